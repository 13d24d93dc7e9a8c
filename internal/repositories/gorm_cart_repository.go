package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boutique/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetBySession retrieves all line items for a session.
func (r *GORMCartRepository) GetBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single line item by ID within the session.
func (r *GORMCartRepository) GetByID(ctx context.Context, sessionID, id string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).First(&item, "id = ? AND session_id = ?", id, sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", id, err)
	}
	return &item, nil
}

// FindBySessionAndProduct retrieves the session's line for a product.
func (r *GORMCartRepository) FindBySessionAndProduct(ctx context.Context, sessionID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).First(&item, "session_id = ? AND product_id = ?", sessionID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to find cart item for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create creates a new line item.
func (r *GORMCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing line item.
func (r *GORMCartRepository) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND session_id = ?", id, sessionID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Delete removes a single line item.
func (r *GORMCartRepository) Delete(ctx context.Context, sessionID, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ? AND session_id = ?", id, sessionID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// DeleteItems removes exactly the named line items; already-gone items
// are skipped silently.
func (r *GORMCartRepository) DeleteItems(ctx context.Context, sessionID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Where("session_id = ? AND id IN ?", sessionID, ids).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}
	return nil
}
