package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports/mocks"
)

func ptr[T any](v T) *T { return &v }

func newListingService(t *testing.T) (*ListingService, *mocks.MockListingRepo, *mocks.MockNearbyCache) {
	t.Helper()
	repo := mocks.NewMockListingRepo(t)
	nearbyCache := mocks.NewMockNearbyCache(t)
	return NewListingService(repo, nearbyCache, newTestLogger(t)), repo, nearbyCache
}

func TestListingService_Create(t *testing.T) {
	svc, repo, _ := newListingService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.Create(context.Background(), domain.CreateListingInput{
		OwnerID:          "owner-1",
		Title:            "Studio near campus",
		Price:            500,
		MaximumOccupancy: 1,
	})

	require.NoError(t, err)
	// New listings always start in moderation.
	assert.Equal(t, domain.ListingStatusPending, listing.Status)
	assert.NotEmpty(t, listing.ID)
}

func TestListingService_Create_Invalid(t *testing.T) {
	svc, _, _ := newListingService(t)

	_, err := svc.Create(context.Background(), domain.CreateListingInput{
		OwnerID: "owner-1",
		Title:   "",
		Price:   500,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Update_OwnerOnly(t *testing.T) {
	svc, repo, _ := newListingService(t)
	listing := &domain.Listing{ID: "l1", OwnerID: "owner-1", Title: "Old", Price: 400}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := svc.Update(context.Background(), "l1", "stranger", domain.UpdateListingInput{
		Title: ptr("New"),
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListingService_Update_OccupancyFloor(t *testing.T) {
	svc, repo, _ := newListingService(t)
	listing := &domain.Listing{
		ID:               "l1",
		OwnerID:          "owner-1",
		MaximumOccupancy: 4,
		CurrentOccupancy: 3,
	}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := svc.Update(context.Background(), "l1", "owner-1", domain.UpdateListingInput{
		MaximumOccupancy: ptr(2),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Update(t *testing.T) {
	svc, repo, _ := newListingService(t)
	listing := &domain.Listing{ID: "l1", OwnerID: "owner-1", Title: "Old", Price: 400}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Update(context.Background(), "l1", "owner-1", domain.UpdateListingInput{
		Title: ptr("New"),
		Price: ptr(450.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 450.0, got.Price)
}

func TestListingService_ChangeStatus_ModerationRequiresAdmin(t *testing.T) {
	svc, repo, _ := newListingService(t)
	listing := &domain.Listing{ID: "l1", OwnerID: "owner-1", Status: domain.ListingStatusPending}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil).Times(2)

	err := svc.ChangeStatus(context.Background(), "l1", "owner-1", domain.RoleLandlord, domain.ListingStatusApproved)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.EXPECT().
		UpdateStatus(mock.Anything, "l1", domain.ListingStatusPending, domain.ListingStatusApproved).
		Return(nil)

	err = svc.ChangeStatus(context.Background(), "l1", "admin-1", domain.RoleAdmin, domain.ListingStatusApproved)
	require.NoError(t, err)
}

func TestListingService_ChangeStatus_OwnerEdges(t *testing.T) {
	svc, repo, _ := newListingService(t)
	listing := &domain.Listing{ID: "l1", OwnerID: "owner-1", Status: domain.ListingStatusActive}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil).Times(2)

	err := svc.ChangeStatus(context.Background(), "l1", "stranger", domain.RoleLandlord, domain.ListingStatusInactive)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.EXPECT().
		UpdateStatus(mock.Anything, "l1", domain.ListingStatusActive, domain.ListingStatusInactive).
		Return(nil)

	err = svc.ChangeStatus(context.Background(), "l1", "owner-1", domain.RoleLandlord, domain.ListingStatusInactive)
	require.NoError(t, err)
}

func TestListingService_ChangeStatus_InvalidEdge(t *testing.T) {
	svc, repo, _ := newListingService(t)
	listing := &domain.Listing{ID: "l1", OwnerID: "owner-1", Status: domain.ListingStatusSold}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	err := svc.ChangeStatus(context.Background(), "l1", "owner-1", domain.RoleLandlord, domain.ListingStatusActive)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestListingService_Nearby_CacheMiss(t *testing.T) {
	svc, repo, nearbyCache := newListingService(t)

	near := &domain.Listing{
		ID:     "a",
		Status: domain.ListingStatusActive,
		Lat:    ptr(34.05),
		Lng:    ptr(-118.25),
	}
	far := &domain.Listing{
		ID:     "b",
		Status: domain.ListingStatusActive,
		Lat:    ptr(40.7128),
		Lng:    ptr(-74.0060),
	}

	nearbyCache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListingFilter) bool {
		return f.Status != nil && *f.Status == domain.ListingStatusActive && f.PageSize == defaultPageSize
	})).Return([]*domain.Listing{near, far}, nil)
	nearbyCache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Nearby(context.Background(), NearbyQuery{
		Center:   domain.GeoPoint{Lat: 34.0522, Lng: -118.2437},
		RadiusKm: 5,
	})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "a", res[0].Listing.ID)
}

func TestListingService_Nearby_CacheHit(t *testing.T) {
	svc, _, nearbyCache := newListingService(t)

	cached := []domain.ListingDistance{{Listing: &domain.Listing{ID: "a"}, DistanceKm: 1.2}}
	nearbyCache.EXPECT().Get(mock.Anything, mock.Anything).Return(cached, true, nil)

	res, err := svc.Nearby(context.Background(), NearbyQuery{
		Center:   domain.GeoPoint{Lat: 34.0522, Lng: -118.2437},
		RadiusKm: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, cached, res)
}

func TestListingService_Nearby_CacheErrorIsNotFatal(t *testing.T) {
	svc, repo, nearbyCache := newListingService(t)

	nearbyCache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))
	repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	nearbyCache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	res, err := svc.Nearby(context.Background(), NearbyQuery{
		Center:   domain.GeoPoint{Lat: 0, Lng: 0},
		RadiusKm: 10,
	})

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestListingService_Nearby_Validation(t *testing.T) {
	svc, _, _ := newListingService(t)

	_, err := svc.Nearby(context.Background(), NearbyQuery{
		Center:   domain.GeoPoint{Lat: 91, Lng: 0},
		RadiusKm: 5,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Nearby(context.Background(), NearbyQuery{
		Center:   domain.GeoPoint{Lat: 0, Lng: 0},
		RadiusKm: 0,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
