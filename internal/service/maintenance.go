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

type MaintenanceService struct {
	maintRepo   ports.MaintenanceRepo
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewMaintenanceService(
	maintRepo ports.MaintenanceRepo,
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintRepo:   maintRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create files a maintenance request. Only a renter currently occupying the
// listing may file one.
func (s *MaintenanceService) Create(ctx context.Context, input domain.CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	occupies, err := s.bookingRepo.ExistsActive(ctx, input.ListingID, input.RenterID)
	if err != nil {
		return nil, fmt.Errorf("check active stay: %w", err)
	}
	if !occupies {
		return nil, fmt.Errorf("%w: only a current renter can file a maintenance request", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	req := &domain.MaintenanceRequest{
		ID:          uuid.New().String(),
		ListingID:   input.ListingID,
		RenterID:    input.RenterID,
		Description: input.Description,
		Status:      domain.MaintenanceStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.maintRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	s.logger.Info("maintenance request filed",
		logger.String("request_id", req.ID),
		logger.String("listing_id", req.ListingID),
	)

	return req, nil
}

// SetStatus moves a request along open→in_progress→resolved/rejected.
// Only the listing owner may act on it.
func (s *MaintenanceService) SetStatus(ctx context.Context, id, actorID string, to domain.MaintenanceStatus) error {
	req, err := s.maintRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	if listing.OwnerID != actorID {
		return fmt.Errorf("%w: only the listing owner can update a maintenance request", domain.ErrUnauthorized)
	}

	if err = domain.ValidateMaintenanceTransition(req.Status, to); err != nil {
		return err
	}

	if err = s.maintRepo.UpdateStatus(ctx, id, req.Status, to); err != nil {
		return fmt.Errorf("update maintenance status: %w", err)
	}

	req.Status = to
	if renter, err := s.userRepo.GetByID(ctx, req.RenterID); err == nil {
		go s.notifier.NotifyMaintenanceUpdated(context.WithoutCancel(ctx), renter, listing, req)
	}

	return nil
}

func (s *MaintenanceService) ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.MaintenanceRequest, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the listing owner can list maintenance requests", domain.ErrUnauthorized)
	}

	return s.maintRepo.ListByListing(ctx, listingID)
}

func (s *MaintenanceService) ListByUser(ctx context.Context, renterID string) ([]*domain.MaintenanceRequest, error) {
	return s.maintRepo.ListByUser(ctx, renterID)
}
