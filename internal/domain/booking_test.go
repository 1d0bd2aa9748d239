package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateBookingTransition(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusApproved},
		{BookingStatusPending, BookingStatusRejected},
		{BookingStatusPending, BookingStatusCancelled},
		{BookingStatusApproved, BookingStatusCancelled},
		{BookingStatusApproved, BookingStatusActive},
		{BookingStatusActive, BookingStatusCompleted},
		{BookingStatusActive, BookingStatusTerminated},
	}
	for _, tc := range allowed {
		assert.NoError(t, ValidateBookingTransition(tc.from, tc.to),
			"%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusActive},
		{BookingStatusPending, BookingStatusCompleted},
		{BookingStatusApproved, BookingStatusRejected},
		{BookingStatusActive, BookingStatusCancelled},
		{BookingStatusRejected, BookingStatusApproved},
		{BookingStatusCancelled, BookingStatusPending},
		{BookingStatusCompleted, BookingStatusActive},
		{BookingStatusTerminated, BookingStatusActive},
	}
	for _, tc := range forbidden {
		err := ValidateBookingTransition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		var ite *InvalidTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, string(tc.from), ite.From)
		assert.Equal(t, string(tc.to), ite.To)
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingStatusRejected.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusTerminated.Terminal())

	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusApproved.Terminal())
	assert.False(t, BookingStatusActive.Terminal())
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(date("2024-01-01"), date("2024-01-02")))

	err := ValidateRange(date("2024-01-02"), date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Zero-length stays are invalid.
	err = ValidateRange(date("2024-01-01"), date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{StartDate: date("2024-01-10"), EndDate: date("2024-01-20")}

	// Overlapping interior.
	assert.True(t, b.Overlaps(date("2024-01-15"), date("2024-01-25")))
	assert.True(t, b.Overlaps(date("2024-01-05"), date("2024-01-11")))
	assert.True(t, b.Overlaps(date("2024-01-12"), date("2024-01-14")))
	assert.True(t, b.Overlaps(date("2024-01-01"), date("2024-02-01")))

	// End date is exclusive: back-to-back stays do not conflict.
	assert.False(t, b.Overlaps(date("2024-01-20"), date("2024-02-01")))
	assert.False(t, b.Overlaps(date("2024-01-01"), date("2024-01-10")))

	assert.False(t, b.Overlaps(date("2024-02-01"), date("2024-03-01")))
}

func TestBackToBackMonths(t *testing.T) {
	jan := &Booking{StartDate: date("2024-01-01"), EndDate: date("2024-02-01")}
	assert.False(t, jan.Overlaps(date("2024-02-01"), date("2024-03-01")))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 6, 15, 13, 45, 12, 999, time.FixedZone("X", 3*3600))
	got := DateOnly(ts)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 15, got.Day())
}

func TestInvalidTransitionError_Is(t *testing.T) {
	err := &InvalidTransitionError{Entity: "booking", From: "pending", To: "active"}
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, errors.Is(err, ErrBookingConflict))
}
