package domain

import "errors"

// Error taxonomy. Services wrap these with context via fmt.Errorf and %w;
// the presentation boundary classifies with errors.Is and turns every one
// of them into a transient notification rather than a crash.
var (
	// ErrValidation marks malformed input, e.g. an empty item name or a
	// negative price.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyCart marks a checkout attempted with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound marks an operation referencing an unknown item, order or
	// cart line. A normal outcome for stale references, not a crash.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition marks a status advance requested out of
	// lifecycle order. The order is left unchanged.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPersistence marks a storage read or write failure. The original
	// behavior treated storage as infallible; here failures surface.
	ErrPersistence = errors.New("persistence failed")
)
