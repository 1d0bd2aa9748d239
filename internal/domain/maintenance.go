package domain

import (
	"fmt"
	"time"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusRejected   MaintenanceStatus = "rejected"
)

type MaintenanceRequest struct {
	ID          string            `json:"id"`
	ListingID   string            `json:"listing_id"`
	RenterID    string            `json:"renter_id"`
	Description string            `json:"description"`
	Status      MaintenanceStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateMaintenanceInput struct {
	ListingID   string
	RenterID    string
	Description string
}

func (i CreateMaintenanceInput) Validate() error {
	if i.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}

var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceStatusOpen:       {MaintenanceStatusInProgress, MaintenanceStatusRejected},
	MaintenanceStatusInProgress: {MaintenanceStatusResolved, MaintenanceStatusRejected},
}

func ValidateMaintenanceTransition(from, to MaintenanceStatus) error {
	for _, allowed := range maintenanceTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{Entity: "maintenance request", From: string(from), To: string(to)}
}
