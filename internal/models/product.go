package models

import "time"

// Product represents a catalog product. Prices are integer minor units
// (e.g. 125000 = $1,250.00) so line totals stay exact integer arithmetic.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" bson:"name" validate:"required,min=3,max=100"`
	Price       int64     `json:"price" bson:"price" validate:"required,gt=0"`
	Description string    `json:"description" bson:"description" validate:"omitempty,max=500"`
	Image       string    `json:"image" bson:"image"`
	Category    string    `json:"category" bson:"category"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
