package handlers

import (
	"errors"
	"log"

	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart mutation.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Put("/:id", h.HandleUpdateItem)
	cartRoutes.Delete("/:id", h.HandleRemoveItem)
}

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateItemRequest is the request body for changing a line's quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// HandleGetCart returns the session's cart lines and grand total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(c.Context(), sessionID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cart)
}

// HandleAddItem adds a product to the session's cart, merging with an
// existing line for the same product.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid productId or quantity",
			"error":   err.Error(),
		})
	}

	item, err := h.service.AddItem(c.Context(), sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		case errors.Is(err, services.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid productId or quantity",
			})
		default:
			log.Printf("Error adding item to cart: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not add item to cart",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(item)
}

// HandleUpdateItem sets a line's quantity. A quantity below 1 removes the
// line, matching the storefront's decrement-to-zero behavior.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid quantity",
			"error":   err.Error(),
		})
	}

	item, err := h.service.SetQuantity(c.Context(), sessionID(c), c.Params("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
			})
		}
		log.Printf("Error updating cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart item",
			"error":   err.Error(),
		})
	}

	if item == nil {
		return c.JSON(fiber.Map{
			"message": "Item removed from cart",
		})
	}
	return c.JSON(item)
}

// HandleRemoveItem deletes a line from the session's cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.Context(), sessionID(c), c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
			})
		}
		log.Printf("Error removing cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}
