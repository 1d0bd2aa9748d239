package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	listingRepo *mocks.MockListingRepo
	userRepo    *mocks.MockUserRepo
	paymentRepo *mocks.MockPaymentRepo
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		listingRepo: mocks.NewMockListingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		paymentRepo: mocks.NewMockPaymentRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.listingRepo, m.userRepo, m.paymentRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func activeListing() *domain.Listing {
	return &domain.Listing{
		ID:      "11111111-1111-1111-1111-111111111111",
		OwnerID: "owner-1",
		Title:   "Studio near campus",
		Price:   500,
		Status:  domain.ListingStatusActive,
	}
}

func TestBookingService_IsAvailable_Free(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().
		ExistsOverlap(mock.Anything, listing.ID, date("2024-03-01"), date("2024-04-01"), domain.BlockingStatuses, "").
		Return(false, nil)

	available, err := svc.IsAvailable(context.Background(), listing.ID, date("2024-03-01"), date("2024-04-01"), "")

	require.NoError(t, err)
	assert.True(t, available)
}

func TestBookingService_IsAvailable_Idempotent(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil).Times(2)
	m.bookingRepo.EXPECT().
		ExistsOverlap(mock.Anything, listing.ID, date("2024-03-01"), date("2024-04-01"), domain.BlockingStatuses, "").
		Return(true, nil).Times(2)

	first, err := svc.IsAvailable(context.Background(), listing.ID, date("2024-03-01"), date("2024-04-01"), "")
	require.NoError(t, err)
	second, err := svc.IsAvailable(context.Background(), listing.ID, date("2024-03-01"), date("2024-04-01"), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, first)
}

func TestBookingService_IsAvailable_InactiveListing(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	listing.Status = domain.ListingStatusInactive

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	available, err := svc.IsAvailable(context.Background(), listing.ID, date("2024-03-01"), date("2024-04-01"), "")

	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingService_IsAvailable_InvalidRange(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.IsAvailable(context.Background(), "l1", date("2024-04-01"), date("2024-03-01"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = svc.IsAvailable(context.Background(), "l1", date("2024-03-01"), date("2024-03-01"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestBookingService_Create(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1", Name: "alice"}
	owner := &domain.User{ID: "owner-1", Name: "bob"}

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "owner-1").Return(owner, nil)
	m.notifier.EXPECT().NotifyBookingRequested(mock.Anything, owner, listing, mock.Anything).Return().Maybe()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ListingID: listing.ID,
		RenterID:  "renter-1",
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStateUnpaid, booking.PaymentState)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, date("2024-03-01"), booking.StartDate)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ListingNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.listingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrListingNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ListingID: "missing",
		RenterID:  "renter-1",
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBookingService_Create_Conflict(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrBookingConflict)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ListingID: listing.ID,
		RenterID:  "renter-1",
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	})

	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestBookingService_Approve(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusPending,
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().Approve(mock.Anything, booking).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.notifier.EXPECT().NotifyBookingApproved(mock.Anything, renter, listing, booking).Return().Maybe()

	err := svc.Approve(context.Background(), "b1", "owner-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_NotOwner(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	booking := &domain.Booking{ID: "b1", ListingID: listing.ID, Status: domain.BookingStatusPending}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.Approve(context.Background(), "b1", "someone-else")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Approve_RivalWonTheDates(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().Approve(mock.Anything, booking).Return(domain.ErrBookingConflict)

	err := svc.Approve(context.Background(), "b1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestBookingService_Approve_AlreadyApproved(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	booking := &domain.Booking{ID: "b1", ListingID: listing.ID, Status: domain.BookingStatusApproved}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.Approve(context.Background(), "b1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel_PendingByRenter(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusCancelled).
		Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, renter, listing, booking).Return().Maybe()

	err := svc.Cancel(context.Background(), "b1", "renter-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_PendingByOwnerForbidden(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.Cancel(context.Background(), "b1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Cancel_ApprovedBeforeStart(t *testing.T) {
	svc, m := newBookingService(t)
	svc.now = func() time.Time { return date("2024-02-15") }

	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusApproved,
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved, domain.BookingStatusCancelled).
		Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, renter, listing, booking).Return().Maybe()

	err := svc.Cancel(context.Background(), "b1", "owner-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_ApprovedAfterStart(t *testing.T) {
	svc, m := newBookingService(t)
	svc.now = func() time.Time { return date("2024-03-01") }

	listing := activeListing()
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusApproved,
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.Cancel(context.Background(), "b1", "renter-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel_ActiveForbidden(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	booking := &domain.Booking{ID: "b1", ListingID: listing.ID, Status: domain.BookingStatusActive}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.Cancel(context.Background(), "b1", "renter-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Complete_BeforeEndDate(t *testing.T) {
	svc, m := newBookingService(t)
	svc.now = func() time.Time { return date("2024-03-15") }

	listing := activeListing()
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		Status:    domain.BookingStatusActive,
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.Complete(context.Background(), "b1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Complete(t *testing.T) {
	svc, m := newBookingService(t)
	svc.now = func() time.Time { return date("2024-04-01") }

	listing := activeListing()
	booking := &domain.Booking{
		ID:        "b1",
		ListingID: listing.ID,
		Status:    domain.BookingStatusActive,
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-04-01"),
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().Complete(mock.Anything, "b1").Return(nil)

	err := svc.Complete(context.Background(), "b1", "owner-1")

	require.NoError(t, err)
}

func TestBookingService_Terminate_RequiresReason(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.Terminate(context.Background(), "b1", "owner-1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Terminate_RefundsPaidBooking(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}
	booking := &domain.Booking{
		ID:           "b1",
		ListingID:    listing.ID,
		RenterID:     "renter-1",
		Status:       domain.BookingStatusActive,
		PaymentState: domain.PaymentStatePaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().Terminate(mock.Anything, "b1", "water damage").Return(nil)
	m.bookingRepo.EXPECT().
		SetPaymentState(mock.Anything, "b1", domain.PaymentStatePaid, domain.PaymentStateRefunded).
		Return(nil)
	m.paymentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Kind == domain.PaymentKindRefund && p.Amount == listing.Price && p.BookingID == "b1"
	})).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, renter, listing, booking).Return().Maybe()

	err := svc.Terminate(context.Background(), "b1", "owner-1", "water damage")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Terminate_UnpaidSkipsRefund(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}
	booking := &domain.Booking{
		ID:           "b1",
		ListingID:    listing.ID,
		RenterID:     "renter-1",
		Status:       domain.BookingStatusActive,
		PaymentState: domain.PaymentStateUnpaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().Terminate(mock.Anything, "b1", "sold the flat").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, renter, listing, booking).Return().Maybe()

	err := svc.Terminate(context.Background(), "b1", "owner-1", "sold the flat")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_GetByID_ParticipantsOnly(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()
	booking := &domain.Booking{ID: "b1", ListingID: listing.ID, RenterID: "renter-1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Times(3)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil).Times(3)

	got, err := svc.GetByID(context.Background(), "b1", "renter-1")
	require.NoError(t, err)
	assert.Equal(t, booking, got)

	_, err = svc.GetByID(context.Background(), "b1", "owner-1")
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "b1", "stranger")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_ListByListing_OwnerOnly(t *testing.T) {
	svc, m := newBookingService(t)
	listing := activeListing()

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil).Times(2)
	m.bookingRepo.EXPECT().ListByListing(mock.Anything, listing.ID).
		Return([]*domain.Booking{{ID: "b1"}}, nil)

	bookings, err := svc.ListByListing(context.Background(), listing.ID, "owner-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	_, err = svc.ListByListing(context.Background(), listing.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_ActivateDue(t *testing.T) {
	svc, m := newBookingService(t)
	svc.now = func() time.Time { return date("2024-03-01") }

	due := []*domain.Booking{{ID: "b1", Status: domain.BookingStatusActive}}
	m.bookingRepo.EXPECT().ActivateDue(mock.Anything, date("2024-03-01")).Return(due, nil)

	got, err := svc.ActivateDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, due, got)
}

func TestBookingService_CompleteDue_Error(t *testing.T) {
	svc, m := newBookingService(t)
	svc.now = func() time.Time { return date("2024-03-01") }

	m.bookingRepo.EXPECT().CompleteDue(mock.Anything, date("2024-03-01")).
		Return(nil, errors.New("db down"))

	_, err := svc.CompleteDue(context.Background())

	assert.Error(t, err)
}
