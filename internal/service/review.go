package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
}

func NewReviewService(reviewRepo ports.ReviewRepo, bookingRepo ports.BookingRepo, listingRepo ports.ListingRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
	}
}

// Create accepts a review only from a renter with a completed stay on the
// listing. The listing's average rating is recomputed inside the same
// transaction as the insert.
func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	stayed, err := s.bookingRepo.ExistsCompleted(ctx, input.ListingID, input.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("check completed stay: %w", err)
	}
	if !stayed {
		return nil, fmt.Errorf("%w: only renters with a completed stay can review", domain.ErrUnauthorized)
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ListingID: input.ListingID,
		AuthorID:  input.AuthorID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByListing(ctx, listingID)
}

func (s *ReviewService) Delete(ctx context.Context, id, actorID string, actorRole domain.Role) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.AuthorID != actorID && actorRole != domain.RoleAdmin {
		return fmt.Errorf("%w: only the author or an admin can delete a review", domain.ErrUnauthorized)
	}

	return s.reviewRepo.Delete(ctx, id)
}
