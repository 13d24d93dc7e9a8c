package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"boutique/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its order code.
func (r *MockOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// ListByEmail returns the orders for an exact customer email, newest first.
func (r *MockOrderRepository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.Customer.Email == email {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}
