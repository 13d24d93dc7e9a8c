package services

import (
	"context"
	"errors"
	"fmt"

	"boutique/internal/models"
	"boutique/internal/repositories"
)

// CartService handles business logic for cart mutation. Every operation
// is scoped to an opaque session key supplied by the caller; there is no
// ambient shared cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts quantity units of a product into the session's cart. If
// the product already has a line, its quantity is incremented rather than
// overwritten. The product must exist and quantity must be at least 1.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindBySessionAndProduct(ctx, sessionID, productID)
	if err != nil && !errors.Is(err, repositories.ErrCartItemNotFound) {
		return nil, fmt.Errorf("failed to look up cart line: %w", err)
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if err := s.cartRepo.UpdateQuantity(ctx, sessionID, existing.ID, newQuantity); err != nil {
			return nil, err
		}
		existing.Quantity = newQuantity
		return existing, nil
	}

	item := &models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity updates a line item's quantity. A quantity below 1 is a
// removal request, not an error: the line is deleted and nil is returned.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		if err := s.RemoveItem(ctx, sessionID, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.cartRepo.UpdateQuantity(ctx, sessionID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(ctx, sessionID, itemID)
}

// RemoveItem deletes a line item from the session's cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	return s.cartRepo.Delete(ctx, sessionID, itemID)
}

// GetCart returns the session's lines joined with their products plus the
// grand total. A line whose product has vanished from the catalog is
// skipped from the view rather than failing the whole cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	items, err := s.cartRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{Items: make([]models.CartLine, 0, len(items))}
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		itemTotal := product.Price * int64(item.Quantity)
		cart.Items = append(cart.Items, models.CartLine{
			ID:        item.ID,
			Product:   *product,
			Quantity:  item.Quantity,
			ItemTotal: itemTotal,
		})
		cart.Total += itemTotal
	}
	return cart, nil
}
