package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boutique/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository. Order
// items are stored as a JSON-serialized snapshot column, mirroring the
// embedded-document shape of the MongoDB backend.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order row.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its order code.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// ListByEmail retrieves the orders for an exact customer email, newest first.
func (r *GORMOrderRepository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for %s: %w", email, err)
	}
	return orders, nil
}
