package services

import "errors"

// Input-level errors surfaced to the request boundary as 400s.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty, nothing to checkout")
	ErrMissingCustomer = errors.New("name and email are required")
)
