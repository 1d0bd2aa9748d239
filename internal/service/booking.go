package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
	paymentRepo ports.PaymentRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger

	now func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	paymentRepo ports.PaymentRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// IsAvailable reports whether [start, end) on the listing is free of
// bookings in a blocking status. Pure read: repeated calls without
// intervening writes return the same answer.
func (s *BookingService) IsAvailable(
	ctx context.Context,
	listingID string,
	start, end time.Time,
	excludeBookingID string,
) (bool, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return false, err
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return false, fmt.Errorf("check listing: %w", err)
	}

	// A listing that is not active cannot be booked, whatever the dates.
	if listing.Status != domain.ListingStatusActive {
		return false, nil
	}

	overlaps, err := s.bookingRepo.ExistsOverlap(
		ctx, listingID, start, end, domain.BlockingStatuses, excludeBookingID,
	)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return !overlaps, nil
}

// Create places a pending booking request. Overlapping pending requests on
// the same listing may coexist; only a booking already approved or active
// blocks creation. The conflict between rival pending requests is resolved
// at approval time.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := domain.ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	renter, err := s.userRepo.GetByID(ctx, input.RenterID)
	if err != nil {
		return nil, fmt.Errorf("check renter: %w", err)
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:           uuid.New().String(),
		ListingID:    input.ListingID,
		RenterID:     input.RenterID,
		StartDate:    domain.DateOnly(input.StartDate),
		EndDate:      domain.DateOnly(input.EndDate),
		Status:       domain.BookingStatusPending,
		PaymentState: domain.PaymentStateUnpaid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
		logger.String("renter_id", renter.ID),
	)

	if owner, err := s.userRepo.GetByID(ctx, listing.OwnerID); err == nil {
		go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), owner, listing, booking)
	}

	return booking, nil
}

// Approve re-runs the availability check (excluding the booking itself) and
// commits pending→approved as one atomic unit. If a rival pending request on
// overlapping dates was approved first, the repository reports
// ErrBookingConflict and the booking stays pending.
func (s *BookingService) Approve(ctx context.Context, bookingID, actorID string) error {
	booking, listing, err := s.bookingWithListing(ctx, bookingID)
	if err != nil {
		return err
	}

	if listing.OwnerID != actorID {
		return fmt.Errorf("%w: only the listing owner can approve", domain.ErrUnauthorized)
	}

	if err = domain.ValidateBookingTransition(booking.Status, domain.BookingStatusApproved); err != nil {
		return err
	}

	if err = s.bookingRepo.Approve(ctx, booking); err != nil {
		return fmt.Errorf("approve booking: %w", err)
	}

	s.logger.Info("booking approved",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
	)

	s.notifyRenter(ctx, booking, listing, s.notifier.NotifyBookingApproved)

	return nil
}

func (s *BookingService) Reject(ctx context.Context, bookingID, actorID string) error {
	booking, listing, err := s.bookingWithListing(ctx, bookingID)
	if err != nil {
		return err
	}

	if listing.OwnerID != actorID {
		return fmt.Errorf("%w: only the listing owner can reject", domain.ErrUnauthorized)
	}

	if err = domain.ValidateBookingTransition(booking.Status, domain.BookingStatusRejected); err != nil {
		return err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, domain.BookingStatusRejected); err != nil {
		return fmt.Errorf("reject booking: %w", err)
	}

	s.notifyRenter(ctx, booking, listing, s.notifier.NotifyBookingRejected)

	return nil
}

// Cancel ends a booking before it starts. A pending request may be cancelled
// by its renter; an approved one by the renter or the owner, but only before
// the start date.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID string) error {
	booking, listing, err := s.bookingWithListing(ctx, bookingID)
	if err != nil {
		return err
	}

	if err = domain.ValidateBookingTransition(booking.Status, domain.BookingStatusCancelled); err != nil {
		return err
	}

	switch booking.Status {
	case domain.BookingStatusPending:
		if actorID != booking.RenterID {
			return fmt.Errorf("%w: only the renter can cancel a pending request", domain.ErrUnauthorized)
		}
	case domain.BookingStatusApproved:
		if actorID != booking.RenterID && actorID != listing.OwnerID {
			return fmt.Errorf("%w: only the renter or the owner can cancel", domain.ErrUnauthorized)
		}
		today := domain.DateOnly(s.now())
		if !today.Before(booking.StartDate) {
			return fmt.Errorf("%w: approved bookings can only be cancelled before the start date", domain.ErrValidation)
		}
	}

	if err = s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, domain.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.notifyRenter(ctx, booking, listing, s.notifier.NotifyBookingCancelled)

	return nil
}

// Complete lets the owner close out an active booking whose end date has
// passed, without waiting for the scheduler sweep.
func (s *BookingService) Complete(ctx context.Context, bookingID, actorID string) error {
	booking, listing, err := s.bookingWithListing(ctx, bookingID)
	if err != nil {
		return err
	}

	if listing.OwnerID != actorID {
		return fmt.Errorf("%w: only the listing owner can complete", domain.ErrUnauthorized)
	}

	if err = domain.ValidateBookingTransition(booking.Status, domain.BookingStatusCompleted); err != nil {
		return err
	}

	today := domain.DateOnly(s.now())
	if today.Before(booking.EndDate) {
		return fmt.Errorf("%w: booking cannot be completed before its end date", domain.ErrValidation)
	}

	if err = s.bookingRepo.Complete(ctx, booking.ID); err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	return nil
}

// Terminate ends an active booking early. A non-empty reason is required,
// and a paid booking is refunded.
func (s *BookingService) Terminate(ctx context.Context, bookingID, actorID, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: termination reason is required", domain.ErrValidation)
	}

	booking, listing, err := s.bookingWithListing(ctx, bookingID)
	if err != nil {
		return err
	}

	if listing.OwnerID != actorID {
		return fmt.Errorf("%w: only the listing owner can terminate", domain.ErrUnauthorized)
	}

	if err = domain.ValidateBookingTransition(booking.Status, domain.BookingStatusTerminated); err != nil {
		return err
	}

	if err = s.bookingRepo.Terminate(ctx, booking.ID, reason); err != nil {
		return fmt.Errorf("terminate booking: %w", err)
	}

	s.logger.Info("booking terminated",
		logger.String("booking_id", booking.ID),
		logger.String("reason", reason),
	)

	if booking.PaymentState == domain.PaymentStatePaid {
		if err = s.refund(ctx, booking, listing); err != nil {
			return err
		}
	}

	s.notifyRenter(ctx, booking, listing, s.notifier.NotifyBookingCancelled)

	return nil
}

func (s *BookingService) refund(ctx context.Context, booking *domain.Booking, listing *domain.Listing) error {
	if err := s.bookingRepo.SetPaymentState(
		ctx, booking.ID, domain.PaymentStatePaid, domain.PaymentStateRefunded,
	); err != nil {
		return fmt.Errorf("mark refunded: %w", err)
	}

	refund := &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		PayerID:   listing.OwnerID,
		Amount:    listing.Price,
		Kind:      domain.PaymentKindRefund,
		CreatedAt: s.now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, refund); err != nil {
		return fmt.Errorf("record refund: %w", err)
	}

	s.logger.Info("booking refunded",
		logger.String("booking_id", booking.ID),
		logger.String("payment_id", refund.ID),
	)

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID, actorID string) (*domain.Booking, error) {
	booking, listing, err := s.bookingWithListing(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actorID != booking.RenterID && actorID != listing.OwnerID {
		return nil, fmt.Errorf("%w: not a participant of this booking", domain.ErrUnauthorized)
	}

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.Booking, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the listing owner can list bookings", domain.ErrUnauthorized)
	}

	return s.bookingRepo.ListByListing(ctx, listingID)
}

// ActivateDue and CompleteDue are the scheduler entry points for the
// date-driven transitions approved→active and active→completed.
func (s *BookingService) ActivateDue(ctx context.Context) ([]*domain.Booking, error) {
	activated, err := s.bookingRepo.ActivateDue(ctx, domain.DateOnly(s.now()))
	if err != nil {
		return nil, fmt.Errorf("activate due: %w", err)
	}

	if len(activated) > 0 {
		s.logger.Info("bookings activated", logger.Int("count", len(activated)))
	}

	return activated, nil
}

func (s *BookingService) CompleteDue(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteDue(ctx, domain.DateOnly(s.now()))
	if err != nil {
		return nil, fmt.Errorf("complete due: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("bookings completed", logger.Int("count", len(completed)))
	}

	return completed, nil
}

func (s *BookingService) bookingWithListing(ctx context.Context, bookingID string) (*domain.Booking, *domain.Listing, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get listing: %w", err)
	}

	return booking, listing, nil
}

func (s *BookingService) notifyRenter(
	ctx context.Context,
	booking *domain.Booking,
	listing *domain.Listing,
	notify func(context.Context, *domain.User, *domain.Listing, *domain.Booking),
) {
	renter, err := s.userRepo.GetByID(ctx, booking.RenterID)
	if err != nil {
		s.logger.Error("failed to get renter for notification",
			logger.String("renter_id", booking.RenterID),
			logger.String("error", err.Error()),
		)
		return
	}

	go notify(context.WithoutCancel(ctx), renter, listing, booking)
}
