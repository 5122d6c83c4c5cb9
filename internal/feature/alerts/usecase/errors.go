package usecase

import "errors"

var (
	// ErrAlertExists is returned when the same email, symbol and target
	// price are already registered.
	ErrAlertExists = errors.New("alert already exists")

	// ErrInvalidTarget is returned for non-positive target prices.
	ErrInvalidTarget = errors.New("target price must be positive")
)
