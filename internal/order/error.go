package order

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrOrderNotFound  = errors.New("order not found")
	ErrMissingFields  = errors.New("all fields are required")
	ErrMissingOrderID = errors.New("order ID is required")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrConflict       = errors.New("order identifier conflict")
)
