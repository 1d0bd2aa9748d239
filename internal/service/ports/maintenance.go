package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type MaintenanceRepo interface {
	Create(ctx context.Context, m *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.MaintenanceStatus) error
	ListByListing(ctx context.Context, listingID string) ([]*domain.MaintenanceRequest, error)
	ListByUser(ctx context.Context, renterID string) ([]*domain.MaintenanceRequest, error)
}
