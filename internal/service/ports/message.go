package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListThread(ctx context.Context, listingID, userA, userB string) ([]*domain.Message, error)
}
