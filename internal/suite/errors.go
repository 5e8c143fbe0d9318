package suite

import "errors"

// Sentinel errors for suite operations.
var (
	ErrUnknownSection  = errors.New("unknown report section")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity out of range")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidTax      = errors.New("tax percent out of range")
)
