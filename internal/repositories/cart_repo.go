package repositories

import (
	"context"

	"boutique/internal/models"
)

// CartRepository defines the interface for cart line-item data access.
// Every operation is scoped by the caller's session key; no operation may
// see or touch another session's lines.
type CartRepository interface {
	GetBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
	GetByID(ctx context.Context, sessionID, id string) (*models.CartItem, error)
	FindBySessionAndProduct(ctx context.Context, sessionID, productID string) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) error
	Delete(ctx context.Context, sessionID, id string) error
	// DeleteItems removes exactly the named line items. Checkout uses it to
	// clear only the lines it captured and charged for, so a line added
	// concurrently with a checkout survives.
	DeleteItems(ctx context.Context, sessionID string, ids []string) error
}
