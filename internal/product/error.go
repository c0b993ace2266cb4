package product

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrNotOwner         = errors.New("not authorized to modify this product")
	ErrNoFieldsToUpdate = errors.New("no update data provided")
)
