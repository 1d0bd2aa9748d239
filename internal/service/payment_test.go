package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports/mocks"
)

type paymentMocks struct {
	paymentRepo *mocks.MockPaymentRepo
	bookingRepo *mocks.MockBookingRepo
	listingRepo *mocks.MockListingRepo
	userRepo    *mocks.MockUserRepo
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		paymentRepo: mocks.NewMockPaymentRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		listingRepo: mocks.NewMockListingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
	}
	svc := NewPaymentService(m.paymentRepo, m.bookingRepo, m.listingRepo, m.userRepo, newTestLogger(t))
	return svc, m
}

func TestPaymentService_Pay(t *testing.T) {
	svc, m := newPaymentService(t)
	listing := activeListing()
	booking := &domain.Booking{
		ID:           "b1",
		ListingID:    listing.ID,
		RenterID:     "renter-1",
		Status:       domain.BookingStatusApproved,
		PaymentState: domain.PaymentStateUnpaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().
		SetPaymentState(mock.Anything, "b1", domain.PaymentStateUnpaid, domain.PaymentStatePaid).
		Return(nil)
	m.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	payment, err := svc.Pay(context.Background(), "b1", "renter-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentKindCharge, payment.Kind)
	assert.Equal(t, listing.Price, payment.Amount)
	assert.Equal(t, "renter-1", payment.PayerID)
}

func TestPaymentService_Pay_RenterOnly(t *testing.T) {
	svc, m := newPaymentService(t)
	booking := &domain.Booking{ID: "b1", RenterID: "renter-1", Status: domain.BookingStatusApproved}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Pay(context.Background(), "b1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPaymentService_Pay_NotPayableStatus(t *testing.T) {
	svc, m := newPaymentService(t)

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusRejected,
		domain.BookingStatusCompleted,
	} {
		booking := &domain.Booking{ID: "b1", RenterID: "renter-1", Status: status}
		m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Once()

		_, err := svc.Pay(context.Background(), "b1", "renter-1")
		assert.ErrorIs(t, err, domain.ErrValidation, "status %s", status)
	}
}

func TestPaymentService_Pay_DoubleSubmission(t *testing.T) {
	svc, m := newPaymentService(t)
	listing := activeListing()
	booking := &domain.Booking{
		ID:           "b1",
		ListingID:    listing.ID,
		RenterID:     "renter-1",
		Status:       domain.BookingStatusApproved,
		PaymentState: domain.PaymentStatePaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	// The unpaid→paid compare-and-swap finds no matching row the second time.
	m.bookingRepo.EXPECT().
		SetPaymentState(mock.Anything, "b1", domain.PaymentStateUnpaid, domain.PaymentStatePaid).
		Return(&domain.InvalidTransitionError{Entity: "payment", From: "paid", To: "paid"})

	_, err := svc.Pay(context.Background(), "b1", "renter-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPaymentService_Receipt(t *testing.T) {
	svc, m := newPaymentService(t)
	listing := activeListing()
	payment := &domain.Payment{
		ID:        "p1",
		BookingID: "b1",
		PayerID:   "renter-1",
		Amount:    500,
		Kind:      domain.PaymentKindCharge,
	}
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	}

	m.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(payment, nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(&domain.User{ID: "renter-1", Name: "alice"}, nil)

	pdfBytes, filename, err := svc.Receipt(context.Background(), "p1", "renter-1", domain.RoleStudent)

	require.NoError(t, err)
	assert.Contains(t, filename, "p1")
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestPaymentService_Receipt_StrangerForbidden(t *testing.T) {
	svc, m := newPaymentService(t)
	listing := activeListing()
	payment := &domain.Payment{ID: "p1", BookingID: "b1", PayerID: "renter-1"}
	booking := &domain.Booking{ID: "b1", ListingID: listing.ID, RenterID: "renter-1"}

	m.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(payment, nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	_, _, err := svc.Receipt(context.Background(), "p1", "stranger", domain.RoleStudent)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPaymentService_ListByBooking(t *testing.T) {
	svc, m := newPaymentService(t)
	listing := activeListing()
	booking := &domain.Booking{ID: "b1", ListingID: listing.ID, RenterID: "renter-1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Times(2)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil).Times(2)
	m.paymentRepo.EXPECT().ListByBooking(mock.Anything, "b1").
		Return([]*domain.Payment{{ID: "p1"}}, nil)

	payments, err := svc.ListByBooking(context.Background(), "b1", "renter-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = svc.ListByBooking(context.Background(), "b1", "stranger")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
