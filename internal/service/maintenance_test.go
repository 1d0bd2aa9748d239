package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports/mocks"
)

type maintenanceMocks struct {
	maintRepo   *mocks.MockMaintenanceRepo
	bookingRepo *mocks.MockBookingRepo
	listingRepo *mocks.MockListingRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
}

func newMaintenanceService(t *testing.T) (*MaintenanceService, maintenanceMocks) {
	t.Helper()
	m := maintenanceMocks{
		maintRepo:   mocks.NewMockMaintenanceRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		listingRepo: mocks.NewMockListingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewMaintenanceService(m.maintRepo, m.bookingRepo, m.listingRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func TestMaintenanceService_Create(t *testing.T) {
	svc, m := newMaintenanceService(t)
	listing := activeListing()

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().ExistsActive(mock.Anything, listing.ID, "renter-1").Return(true, nil)
	m.maintRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	req, err := svc.Create(context.Background(), domain.CreateMaintenanceInput{
		ListingID:   listing.ID,
		RenterID:    "renter-1",
		Description: "heater is broken",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceStatusOpen, req.Status)
	assert.NotEmpty(t, req.ID)
}

func TestMaintenanceService_Create_NotOccupying(t *testing.T) {
	svc, m := newMaintenanceService(t)
	listing := activeListing()

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.bookingRepo.EXPECT().ExistsActive(mock.Anything, listing.ID, "renter-1").Return(false, nil)

	_, err := svc.Create(context.Background(), domain.CreateMaintenanceInput{
		ListingID:   listing.ID,
		RenterID:    "renter-1",
		Description: "heater is broken",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMaintenanceService_SetStatus(t *testing.T) {
	svc, m := newMaintenanceService(t)
	listing := activeListing()
	renter := &domain.User{ID: "renter-1"}
	req := &domain.MaintenanceRequest{
		ID:        "m1",
		ListingID: listing.ID,
		RenterID:  "renter-1",
		Status:    domain.MaintenanceStatusOpen,
	}

	m.maintRepo.EXPECT().GetByID(mock.Anything, "m1").Return(req, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	m.maintRepo.EXPECT().
		UpdateStatus(mock.Anything, "m1", domain.MaintenanceStatusOpen, domain.MaintenanceStatusInProgress).
		Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "renter-1").Return(renter, nil)
	m.notifier.EXPECT().NotifyMaintenanceUpdated(mock.Anything, renter, listing, req).Return().Maybe()

	err := svc.SetStatus(context.Background(), "m1", "owner-1", domain.MaintenanceStatusInProgress)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestMaintenanceService_SetStatus_OwnerOnly(t *testing.T) {
	svc, m := newMaintenanceService(t)
	listing := activeListing()
	req := &domain.MaintenanceRequest{ID: "m1", ListingID: listing.ID, Status: domain.MaintenanceStatusOpen}

	m.maintRepo.EXPECT().GetByID(mock.Anything, "m1").Return(req, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.SetStatus(context.Background(), "m1", "stranger", domain.MaintenanceStatusInProgress)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMaintenanceService_SetStatus_InvalidEdge(t *testing.T) {
	svc, m := newMaintenanceService(t)
	listing := activeListing()
	req := &domain.MaintenanceRequest{ID: "m1", ListingID: listing.ID, Status: domain.MaintenanceStatusResolved}

	m.maintRepo.EXPECT().GetByID(mock.Anything, "m1").Return(req, nil)
	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	err := svc.SetStatus(context.Background(), "m1", "owner-1", domain.MaintenanceStatusInProgress)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMaintenanceService_ListByListing_OwnerOnly(t *testing.T) {
	svc, m := newMaintenanceService(t)
	listing := activeListing()

	m.listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil).Times(2)
	m.maintRepo.EXPECT().ListByListing(mock.Anything, listing.ID).
		Return([]*domain.MaintenanceRequest{{ID: "m1"}}, nil)

	reqs, err := svc.ListByListing(context.Background(), listing.ID, "owner-1")
	require.NoError(t, err)
	assert.Len(t, reqs, 1)

	_, err = svc.ListByListing(context.Background(), listing.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
