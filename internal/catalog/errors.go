package catalog

import "errors"

// Common errors returned by the store
var (
	ErrProductExists    = errors.New("product already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
)
