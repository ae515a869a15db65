package currency

import "errors"

var (
	// ErrInvalidAmount is returned when the amount is not a finite decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidOptions is returned for formatting options that cannot produce a result.
	ErrInvalidOptions = errors.New("invalid formatting options")
)
