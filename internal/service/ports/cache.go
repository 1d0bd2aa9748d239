package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type NearbyCache interface {
	Get(ctx context.Context, key string) ([]domain.ListingDistance, bool, error)
	Set(ctx context.Context, key string, val []domain.ListingDistance) error
}
