package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports"
)

type MessageService struct {
	messageRepo ports.MessageRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
}

func NewMessageService(messageRepo ports.MessageRepo, listingRepo ports.ListingRepo, userRepo ports.UserRepo) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

// Send posts a message into a listing-scoped thread. One side of the thread
// must be the listing owner; there is no student-to-student messaging.
func (s *MessageService) Send(ctx context.Context, input domain.SendMessageInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	if _, err = s.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		return nil, fmt.Errorf("check recipient: %w", err)
	}

	if input.SenderID != listing.OwnerID && input.RecipientID != listing.OwnerID {
		return nil, fmt.Errorf("%w: thread must involve the listing owner", domain.ErrUnauthorized)
	}

	msg := &domain.Message{
		ID:          uuid.New().String(),
		ListingID:   input.ListingID,
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Body:        input.Body,
		CreatedAt:   time.Now().UTC(),
	}

	if err = s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return msg, nil
}

// Thread returns both directions of the conversation between the actor and
// the given counterpart on a listing, oldest first.
func (s *MessageService) Thread(ctx context.Context, listingID, actorID, withID string) ([]*domain.Message, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	return s.messageRepo.ListThread(ctx, listingID, actorID, withID)
}
