package models

import "time"

// CartItem is a single stored cart line: one product reference plus a
// positive quantity, scoped to an opaque session key. At most one line
// exists per (session, product) pair; adding the same product again
// increments the existing line instead of creating a second one.
type CartItem struct {
	ID        string    `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	SessionID string    `json:"sessionId" bson:"session_id" gorm:"index;type:varchar(64)"`
	ProductID string    `json:"productId" bson:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity  int       `json:"quantity" bson:"quantity" validate:"required,gte=1"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// CartLine is a cart item joined with its live product and the derived
// line total (unit price × quantity).
type CartLine struct {
	ID        string  `json:"id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	ItemTotal int64   `json:"itemTotal"`
}

// Cart is the full view of a session's cart: all joined lines plus the
// grand total over them.
type Cart struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}
