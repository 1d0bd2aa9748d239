package domain

import (
	"fmt"
	"time"
)

type ListingStatus string

const (
	ListingStatusPending          ListingStatus = "pending"
	ListingStatusApproved         ListingStatus = "approved"
	ListingStatusRejected         ListingStatus = "rejected"
	ListingStatusActive           ListingStatus = "active"
	ListingStatusInactive         ListingStatus = "inactive"
	ListingStatusSold             ListingStatus = "sold"
	ListingStatusUnderMaintenance ListingStatus = "under_maintenance"
)

type Listing struct {
	ID               string        `json:"id"`
	OwnerID          string        `json:"owner_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Price            float64       `json:"price"`
	MaximumOccupancy int           `json:"maximum_occupancy"`
	CurrentOccupancy int           `json:"current_occupancy"`
	Lat              *float64      `json:"lat,omitempty"`
	Lng              *float64      `json:"lng,omitempty"`
	Status           ListingStatus `json:"status"`
	Rating           float64       `json:"rating"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type CreateListingInput struct {
	OwnerID          string
	Title            string
	Description      string
	Price            float64
	MaximumOccupancy int
	Lat              *float64
	Lng              *float64
}

type UpdateListingInput struct {
	Title            *string
	Description      *string
	Price            *float64
	MaximumOccupancy *int
	Lat              *float64
	Lng              *float64
}

// ListingFilter narrows List queries. Page numbering starts at 1.
type ListingFilter struct {
	Status   *ListingStatus
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PageSize int
}

var listingTransitions = map[ListingStatus][]ListingStatus{
	ListingStatusPending:          {ListingStatusApproved, ListingStatusRejected},
	ListingStatusApproved:         {ListingStatusActive},
	ListingStatusActive:           {ListingStatusInactive, ListingStatusSold, ListingStatusUnderMaintenance},
	ListingStatusInactive:         {ListingStatusActive},
	ListingStatusUnderMaintenance: {ListingStatusActive},
}

func ValidateListingTransition(from, to ListingStatus) error {
	for _, allowed := range listingTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{Entity: "listing", From: string(from), To: string(to)}
}

func (i CreateListingInput) Validate() error {
	if i.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if i.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if i.MaximumOccupancy <= 0 {
		return fmt.Errorf("%w: maximum_occupancy must be positive", ErrValidation)
	}
	return nil
}

// Coordinates returns the listing's geo point and whether it is usable for
// distance computation. Listings without valid numeric coordinates are
// excluded from geo search rather than treated as distance zero.
func (l *Listing) Coordinates() (GeoPoint, bool) {
	if l.Lat == nil || l.Lng == nil {
		return GeoPoint{}, false
	}
	p := GeoPoint{Lat: *l.Lat, Lng: *l.Lng}
	return p, p.Valid()
}
