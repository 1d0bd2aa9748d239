package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, f domain.ListingFilter) ([]*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	UpdateStatus(ctx context.Context, id string, from, to domain.ListingStatus) error
}
