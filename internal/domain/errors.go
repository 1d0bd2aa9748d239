package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrMaintenanceNotFound = errors.New("maintenance request not found")
)

var (
	ErrInvalidRange      = errors.New("invalid date range")
	ErrBookingConflict   = errors.New("dates are no longer available")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("actor is not allowed to perform this action")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)

// InvalidTransitionError carries the attempted from/to pair so callers can
// see exactly which edge of the transition table was violated.
// errors.Is(err, ErrInvalidTransition) matches it.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition from %q to %q", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
