package repositories

import "errors"

// Sentinel errors returned by every repository implementation so callers
// can distinguish "referenced thing does not exist" from storage failure
// with errors.Is instead of string matching.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
)
