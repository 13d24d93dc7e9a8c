package repositories

import (
	"context"

	"boutique/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// write-once: there is deliberately no update or delete method.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// ListByEmail returns the orders whose customer email matches exactly
	// (case-sensitive), newest first. No match is an empty slice, not an error.
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
}
