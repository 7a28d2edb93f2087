package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidItem          = errors.New("invalid cart item")
	ErrConfirmationRequired = errors.New("confirmation required")
)
