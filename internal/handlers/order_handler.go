package handlers

import (
	"errors"
	"log"

	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout and order routes with the Fiber
// app. The detail route must be registered before the email route so the
// literal "detail" segment is not captured as an email parameter.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
	router.Get("/orders/detail/:orderId", h.HandleGetOrderByID)
	router.Get("/orders/:email", h.HandleListOrdersByEmail)
}

// HandleCheckout snapshots the session's cart into an immutable order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	req.SessionID = sessionID(c)

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name and email are required",
			"error":   err.Error(),
		})
	}

	order, err := h.service.Checkout(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCustomer),
			errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, repositories.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		default:
			log.Printf("Error during checkout: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Checkout failed",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(order)
}

// HandleListOrdersByEmail returns a customer's order history, newest first.
func (h *OrderHandler) HandleListOrdersByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email is required",
		})
	}

	orders, err := h.service.ListOrdersByEmail(c.Context(), email)
	if err != nil {
		log.Printf("Error listing orders for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns a single order by its order code.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	order, err := h.service.GetOrderByID(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
