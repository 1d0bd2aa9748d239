package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusApproved   BookingStatus = "approved"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusActive     BookingStatus = "active"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusTerminated BookingStatus = "terminated"
)

// BlockingStatuses are the statuses that count toward availability conflicts.
var BlockingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusApproved,
	BookingStatusActive,
}

// CommittedStatuses are the blocking statuses that exclude pending.
// New requests are checked against these only, so overlapping pending
// requests may coexist until one of them is approved.
var CommittedStatuses = []BookingStatus{
	BookingStatusApproved,
	BookingStatusActive,
}

type PaymentState string

const (
	PaymentStateUnpaid   PaymentState = "unpaid"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateRefunded PaymentState = "refunded"
)

// DateFormat is the wire format for booking dates: calendar dates, no time part.
const DateFormat = "2006-01-02"

type Booking struct {
	ID                string        `json:"id"`
	ListingID         string        `json:"listing_id"`
	RenterID          string        `json:"renter_id"`
	StartDate         time.Time     `json:"start_date"`
	EndDate           time.Time     `json:"end_date"`
	Status            BookingStatus `json:"status"`
	PaymentState      PaymentState  `json:"payment_state"`
	TerminationReason string        `json:"termination_reason,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	ListingID string
	RenterID  string
	StartDate time.Time
	EndDate   time.Time
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusApproved: {BookingStatusCancelled, BookingStatusActive},
	BookingStatusActive:   {BookingStatusCompleted, BookingStatusTerminated},
}

var bookingTerminal = map[BookingStatus]bool{
	BookingStatusRejected:   true,
	BookingStatusCancelled:  true,
	BookingStatusCompleted:  true,
	BookingStatusTerminated: true,
}

// ValidateBookingTransition is the single place the booking transition table
// lives. Every status change, whether user- or scheduler-driven, goes
// through it.
func ValidateBookingTransition(from, to BookingStatus) error {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{Entity: "booking", From: string(from), To: string(to)}
}

func (s BookingStatus) Terminal() bool {
	return bookingTerminal[s]
}

// ValidateRange rejects malformed booking ranges. Zero-length ranges
// (start == end) are invalid, not trivially available.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start date must be before end date", ErrInvalidRange)
	}
	return nil
}

// Overlaps reports whether the booking's [start, end) range intersects the
// given one. Ranges that only touch at a boundary do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && b.EndDate.After(start)
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
