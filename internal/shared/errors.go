package shared

import "errors"

var (

	// common errors
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	// auth-specific errors
	ErrAuth      = errors.New("authentication required")
	ErrForbidden = errors.New("insufficient access level")

	// infrastructure errors
	ErrConfiguration = errors.New("configuration error")
	ErrStorage       = errors.New("storage unavailable")
)
