package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, rev *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
}
