package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateListingTransition(t *testing.T) {
	allowed := []struct {
		from, to ListingStatus
	}{
		{ListingStatusPending, ListingStatusApproved},
		{ListingStatusPending, ListingStatusRejected},
		{ListingStatusApproved, ListingStatusActive},
		{ListingStatusActive, ListingStatusInactive},
		{ListingStatusActive, ListingStatusSold},
		{ListingStatusActive, ListingStatusUnderMaintenance},
		{ListingStatusInactive, ListingStatusActive},
		{ListingStatusUnderMaintenance, ListingStatusActive},
	}
	for _, tc := range allowed {
		assert.NoError(t, ValidateListingTransition(tc.from, tc.to),
			"%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to ListingStatus
	}{
		{ListingStatusPending, ListingStatusActive},
		{ListingStatusRejected, ListingStatusApproved},
		{ListingStatusSold, ListingStatusActive},
		{ListingStatusActive, ListingStatusApproved},
		{ListingStatusInactive, ListingStatusSold},
	}
	for _, tc := range forbidden {
		err := ValidateListingTransition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestCreateListingInput_Validate(t *testing.T) {
	valid := CreateListingInput{Title: "Room near campus", Price: 450, MaximumOccupancy: 2}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorIs(t, noTitle.Validate(), ErrValidation)

	freeRoom := valid
	freeRoom.Price = 0
	assert.ErrorIs(t, freeRoom.Validate(), ErrValidation)

	noSpots := valid
	noSpots.MaximumOccupancy = 0
	assert.ErrorIs(t, noSpots.Validate(), ErrValidation)
}

func TestListing_Coordinates(t *testing.T) {
	l := &Listing{Lat: ptr(48.8566), Lng: ptr(2.3522)}
	p, ok := l.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 48.8566, p.Lat)
	assert.Equal(t, 2.3522, p.Lng)

	_, ok = (&Listing{Lat: ptr(48.8566)}).Coordinates()
	assert.False(t, ok)

	_, ok = (&Listing{}).Coordinates()
	assert.False(t, ok)

	_, ok = (&Listing{Lat: ptr(123.0), Lng: ptr(0.0)}).Coordinates()
	assert.False(t, ok)
}
