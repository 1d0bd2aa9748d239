package ports

import (
	"context"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, owner *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingApproved(ctx context.Context, renter *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingRejected(ctx context.Context, renter *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyMaintenanceUpdated(ctx context.Context, renter *domain.User, listing *domain.Listing, req *domain.MaintenanceRequest)
}
