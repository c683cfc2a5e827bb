package drip

import "errors"

var (
	// ErrNonPositiveAmount is returned when an event amount must be strictly positive.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrNegativeAmount is returned when an allocation amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrInvalidAccount is returned when an account cannot be used for an operation.
	ErrInvalidAccount = errors.New("invalid account")
	// ErrUnknownBucket is returned when a custom bucket target does not exist.
	ErrUnknownBucket = errors.New("unknown custom bucket")
)
