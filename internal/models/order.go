package models

import "time"

// OrderStatusConfirmed is the only status an order ever carries; orders
// are written once at checkout and never transition afterwards.
const OrderStatusConfirmed = "confirmed"

// Customer identifies who placed an order. Both fields are free text
// captured at checkout; the email is stored exactly as given and order
// history lookups match it case-sensitively.
type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email" gorm:"index"`
}

// OrderItem is a frozen line of a completed order. Name, price, image
// and category are copied from the product at checkout time; later
// product edits never reach back into a stored order.
type OrderItem struct {
	ProductID string `json:"productId" bson:"product_id"`
	Name      string `json:"name" bson:"name"`
	Price     int64  `json:"price" bson:"price"`
	Image     string `json:"image" bson:"image"`
	Category  string `json:"category" bson:"category"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	ItemTotal int64  `json:"itemTotal" bson:"item_total"`
}

// Order is the immutable receipt of a checkout. ID is the human-readable
// order code (ORD-...); there is no update path for orders anywhere in
// the system.
type Order struct {
	ID        string      `json:"orderId" bson:"_id" gorm:"primaryKey;type:varchar(40)"`
	Customer  Customer    `json:"customer" bson:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Items     []OrderItem `json:"items" bson:"items" gorm:"serializer:json"`
	Total     int64       `json:"total" bson:"total"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"timestamp" bson:"created_at"`
}
