package cart

import "errors"

// Common errors returned by the cart
var (
	ErrUnknownProduct       = errors.New("product is not in the cart")
	ErrInsufficientQuantity = errors.New("cart holds fewer items than requested")
	ErrNegativeQuantity     = errors.New("quantity must not be negative")
)
