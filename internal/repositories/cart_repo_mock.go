package repositories

import (
	"context"
	"sync"
	"time"

	"boutique/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Line items are stored in a flat map; every lookup filters by session key.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

// GetBySession returns all line items belonging to the session.
func (r *MockCartRepository) GetBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.SessionID == sessionID {
			itemList = append(itemList, item)
		}
	}
	return itemList, nil
}

// GetByID returns a line item by its ID within the session.
func (r *MockCartRepository) GetByID(ctx context.Context, sessionID, id string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || item.SessionID != sessionID {
		return nil, ErrCartItemNotFound
	}
	return &item, nil
}

// FindBySessionAndProduct returns the session's line for a product.
func (r *MockCartRepository) FindBySessionAndProduct(ctx context.Context, sessionID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.SessionID == sessionID && item.ProductID == productID {
			return &item, nil
		}
	}
	return nil, ErrCartItemNotFound
}

// Create adds a new line item.
func (r *MockCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = *item
	return nil
}

// UpdateQuantity sets the quantity of an existing line item.
func (r *MockCartRepository) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.SessionID != sessionID {
		return ErrCartItemNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	r.items[id] = item
	return nil
}

// Delete removes a single line item.
func (r *MockCartRepository) Delete(ctx context.Context, sessionID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.SessionID != sessionID {
		return ErrCartItemNotFound
	}
	delete(r.items, id)
	return nil
}

// DeleteItems removes exactly the named line items; already-gone items
// are skipped silently.
func (r *MockCartRepository) DeleteItems(ctx context.Context, sessionID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if item, ok := r.items[id]; ok && item.SessionID == sessionID {
			delete(r.items, id)
		}
	}
	return nil
}
