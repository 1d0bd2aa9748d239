package ports

import (
	"context"
	"time"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ExistsOverlap(ctx context.Context, listingID string, start, end time.Time, statuses []domain.BookingStatus, excludeID string) (bool, error)
	Approve(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	Terminate(ctx context.Context, id, reason string) error
	Complete(ctx context.Context, id string) error
	SetPaymentState(ctx context.Context, id string, from, to domain.PaymentState) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error)
	ExistsCompleted(ctx context.Context, listingID, renterID string) (bool, error)
	ExistsActive(ctx context.Context, listingID, renterID string) (bool, error)
	ActivateDue(ctx context.Context, today time.Time) ([]*domain.Booking, error)
	CompleteDue(ctx context.Context, today time.Time) ([]*domain.Booking, error)
}
