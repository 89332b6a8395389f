package repository

import "errors"

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")

	ErrInsufficientStock = errors.New("insufficient stock")
)
