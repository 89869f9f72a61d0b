package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidShippingMethod indicates a value passed as a shipping method
	// is neither ShippingMethod- nor Store-shaped.
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
)
