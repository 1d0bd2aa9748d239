package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error)
}
