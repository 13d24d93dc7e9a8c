package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"boutique/internal/models"
	"boutique/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes domain events after a successful checkout.
// pkg/rabbitmq satisfies it; a nil publisher disables events entirely.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CheckoutItem is a caller-supplied (product, quantity) pair. It is only
// consulted when the live cart is empty; quantities come from the caller
// but prices are always resolved against the current catalog, so a client
// can never spoof a price.
type CheckoutItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CheckoutRequest carries the customer identity and optional explicit
// line items for a checkout.
type CheckoutRequest struct {
	SessionID string         `json:"-"`
	Name      string         `json:"name" validate:"required"`
	Email     string         `json:"email" validate:"required"`
	CartItems []CheckoutItem `json:"cartItems" validate:"omitempty,dive"`
}

// OrderService handles the checkout transition and order history lookups.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case checkout skips event publication.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Checkout converts the session's cart into an immutable order.
//
// The live cart is the authoritative line-item source whenever it is
// non-empty; the request's explicit cartItems are used only for an empty
// live cart. Each purchased product's name, price, image and category are
// copied into the order at this moment, so later catalog edits never
// alter the receipt. On success the cart lines that were captured — and
// only those — are deleted: a line added concurrently with the checkout
// survives. If persisting the order fails the cart is left untouched; if
// clearing fails after the order was written, the order stands and the
// failure is only logged.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrMissingCustomer
	}

	lines, capturedIDs, err := s.resolveLines(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:        newOrderCode(),
		Customer:  models.Customer{Name: req.Name, Email: req.Email},
		Status:    models.OrderStatusConfirmed,
		CreatedAt: time.Now(),
	}

	for _, line := range lines {
		itemTotal := line.product.Price * int64(line.quantity)
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.product.ID,
			Name:      line.product.Name,
			Price:     line.product.Price,
			Image:     line.product.Image,
			Category:  line.product.Category,
			Quantity:  line.quantity,
			ItemTotal: itemTotal,
		})
		order.Total += itemTotal
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Cart deliberately untouched: a failed checkout must not lose items.
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.cartRepo.DeleteItems(ctx, req.SessionID, capturedIDs); err != nil {
		// Known gap: the order is already recorded, so the customer keeps
		// the receipt; a stale cart is the lesser failure.
		log.Printf("Warning: order %s recorded but cart clear failed: %v", order.ID, err)
	}

	s.publishOrderConfirmed(order)

	return order, nil
}

// GetOrderByID retrieves a single order by its order code.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListOrdersByEmail retrieves a customer's orders, newest first.
func (s *OrderService) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.orderRepo.ListByEmail(ctx, email)
}

// resolvedLine pairs a live product with the quantity being purchased.
type resolvedLine struct {
	product  models.Product
	quantity int
}

// resolveLines picks the authoritative line-item set and the cart-item IDs
// it was captured from. Explicit request items resolve against the current
// catalog and fail the checkout on an unknown product instead of silently
// charging for fewer items than the customer saw.
func (s *OrderService) resolveLines(ctx context.Context, req CheckoutRequest) ([]resolvedLine, []string, error) {
	cartItems, err := s.cartRepo.GetBySession(ctx, req.SessionID)
	if err != nil {
		return nil, nil, err
	}

	if len(cartItems) > 0 {
		lines := make([]resolvedLine, 0, len(cartItems))
		ids := make([]string, 0, len(cartItems))
		for _, item := range cartItems {
			product, err := s.productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return nil, nil, err
			}
			lines = append(lines, resolvedLine{product: *product, quantity: item.Quantity})
			ids = append(ids, item.ID)
		}
		return lines, ids, nil
	}

	lines := make([]resolvedLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		if item.Quantity < 1 {
			return nil, nil, ErrInvalidQuantity
		}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, resolvedLine{product: *product, quantity: item.Quantity})
	}
	return lines, nil, nil
}

// publishOrderConfirmed emits an order.confirmed event. Publishing is
// best effort; the checkout already succeeded and must not be failed by
// broker trouble.
func (s *OrderService) publishOrderConfirmed(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"orderId": order.ID,
		"email":   order.Customer.Email,
		"total":   order.Total,
		"status":  order.Status,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for %s: %v", order.ID, err)
		return
	}

	if err := s.publisher.Publish("order", "order.confirmed", body); err != nil {
		log.Printf("Warning: failed to publish order confirmed event for %s: %v", order.ID, err)
	} else {
		log.Printf("Published order confirmed event for %s", order.ID)
	}
}

// newOrderCode builds a human-readable, effectively collision-free order
// identifier: millisecond timestamp plus a short random suffix.
func newOrderCode() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:4])
}
