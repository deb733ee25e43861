package domain

import "errors"

var (
	// ErrInvalidTransition is returned for a lifecycle change the booking does not allow
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrPaidExceedsTotal is returned when the paid amount would exceed the total
	ErrPaidExceedsTotal = errors.New("domain: paid amount exceeds total amount")

	// ErrNegativeAmount is returned for a negative monetary amount
	ErrNegativeAmount = errors.New("domain: amount must not be negative")
)
