package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("cart: item not found")
	ErrEmptyCart         = errors.New("cart: cart is empty")
	ErrUnknownPromo      = errors.New("pricing: unknown promo code")
	ErrInvalidTransition = errors.New("checkout: invalid state transition")
)

// ValidationError enumerates the checkout fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// StorageError wraps an unreadable or corrupt persisted cart. Callers recover
// by falling back to an empty cart; it is never fatal.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
