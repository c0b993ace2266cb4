package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder    = errors.New("cannot create an empty order")
	ErrOrderNotFound = errors.New("order not found")
)

// ProductsNotFoundError reports every missing product id from a cart, not
// just the first one.
type ProductsNotFoundError struct {
	IDs []uint
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("products not found: %v", e.IDs)
}
