package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/cache"
	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type NearbyQuery struct {
	Center   domain.GeoPoint
	RadiusKm float64
	Page     int
	PageSize int
	MinPrice *float64
	MaxPrice *float64
}

type ListingService struct {
	repo   ports.ListingRepo
	cache  ports.NearbyCache
	logger logger.Logger
}

func NewListingService(repo ports.ListingRepo, cache ports.NearbyCache, logger logger.Logger) *ListingService {
	return &ListingService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		ID:               uuid.New().String(),
		OwnerID:          input.OwnerID,
		Title:            input.Title,
		Description:      input.Description,
		Price:            input.Price,
		MaximumOccupancy: input.MaximumOccupancy,
		Lat:              input.Lat,
		Lng:              input.Lng,
		Status:           domain.ListingStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context, f domain.ListingFilter) ([]*domain.Listing, error) {
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return s.repo.List(ctx, f)
}

func (s *ListingService) Update(ctx context.Context, id, actorID string, input domain.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can update a listing", domain.ErrUnauthorized)
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
		}
		listing.Price = *input.Price
	}
	if input.MaximumOccupancy != nil {
		if *input.MaximumOccupancy < listing.CurrentOccupancy {
			return nil, fmt.Errorf("%w: maximum_occupancy cannot drop below current occupancy", domain.ErrValidation)
		}
		listing.MaximumOccupancy = *input.MaximumOccupancy
	}
	if input.Lat != nil {
		listing.Lat = input.Lat
	}
	if input.Lng != nil {
		listing.Lng = input.Lng
	}

	if err = s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	return listing, nil
}

// ChangeStatus moves a listing along its status table. Moderation edges
// (pending→approved/rejected) are admin-only; the rest belong to the owner.
func (s *ListingService) ChangeStatus(ctx context.Context, id, actorID string, actorRole domain.Role, to domain.ListingStatus) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	moderation := to == domain.ListingStatusApproved || to == domain.ListingStatusRejected
	switch {
	case moderation:
		if actorRole != domain.RoleAdmin {
			return fmt.Errorf("%w: listing moderation requires admin", domain.ErrUnauthorized)
		}
	case listing.OwnerID != actorID && actorRole != domain.RoleAdmin:
		return fmt.Errorf("%w: only the owner can change listing status", domain.ErrUnauthorized)
	}

	if err = domain.ValidateListingTransition(listing.Status, to); err != nil {
		return err
	}

	if err = s.repo.UpdateStatus(ctx, id, listing.Status, to); err != nil {
		return fmt.Errorf("change listing status: %w", err)
	}

	s.logger.Info("listing status changed",
		logger.String("listing_id", id),
		logger.String("from", string(listing.Status)),
		logger.String("to", string(to)),
	)

	return nil
}

// Nearby filters active listings by great-circle distance from center.
// The radius filter runs after pagination and price filtering, so a page
// can legitimately hold fewer than PageSize results even when later pages
// are non-empty; callers paginate until an empty page.
func (s *ListingService) Nearby(ctx context.Context, q NearbyQuery) ([]domain.ListingDistance, error) {
	if !q.Center.Valid() {
		return nil, fmt.Errorf("%w: invalid center coordinates", domain.ErrValidation)
	}
	if q.RadiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", domain.ErrValidation)
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}

	key := cache.Key(q.Center, q.RadiusKm, q.Page, q.PageSize, q.MinPrice, q.MaxPrice)
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("nearby cache read failed", logger.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	status := domain.ListingStatusActive
	candidates, err := s.repo.List(ctx, domain.ListingFilter{
		Status:   &status,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	res := domain.FilterByRadius(candidates, q.Center, q.RadiusKm)

	if err = s.cache.Set(ctx, key, res); err != nil {
		s.logger.Warn("nearby cache write failed", logger.String("error", err.Error()))
	}

	return res, nil
}
