package repositories

import (
	"context"

	"boutique/internal/models"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Count(ctx context.Context) (int64, error)
}
