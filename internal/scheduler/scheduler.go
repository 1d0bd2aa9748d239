package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type bookingTransitioner interface {
	ActivateDue(ctx context.Context) ([]*domain.Booking, error)
	CompleteDue(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler moves bookings along the calendar: approved bookings whose
// start date has arrived become active, active bookings whose end date
// has passed become completed.
type Scheduler struct {
	bookingService bookingTransitioner
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingTransitioner,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	activated, err := s.bookingService.ActivateDue(ctx)
	if err != nil {
		s.logger.Error("failed to activate due bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range activated {
		s.logger.Info("booking activated",
			logger.String("booking_id", b.ID),
			logger.String("listing_id", b.ListingID),
			logger.String("renter_id", b.RenterID),
		)
	}

	completed, err := s.bookingService.CompleteDue(ctx)
	if err != nil {
		s.logger.Error("failed to complete due bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.String("booking_id", b.ID),
			logger.String("listing_id", b.ListingID),
			logger.String("renter_id", b.RenterID),
		)
	}
}
