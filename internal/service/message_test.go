package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/service/ports/mocks"
)

func newMessageService(t *testing.T) (*MessageService, *mocks.MockMessageRepo, *mocks.MockListingRepo, *mocks.MockUserRepo) {
	t.Helper()
	messageRepo := mocks.NewMockMessageRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	return NewMessageService(messageRepo, listingRepo, userRepo), messageRepo, listingRepo, userRepo
}

func TestMessageService_Send(t *testing.T) {
	svc, messageRepo, listingRepo, userRepo := newMessageService(t)
	listing := activeListing()

	listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1"}, nil)
	messageRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	msg, err := svc.Send(context.Background(), domain.SendMessageInput{
		ListingID:   listing.ID,
		SenderID:    "student-1",
		RecipientID: "owner-1",
		Body:        "Is the room still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, "student-1", msg.SenderID)
	assert.NotEmpty(t, msg.ID)
}

func TestMessageService_Send_MustInvolveOwner(t *testing.T) {
	svc, _, listingRepo, userRepo := newMessageService(t)
	listing := activeListing()

	listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "student-2").Return(&domain.User{ID: "student-2"}, nil)

	_, err := svc.Send(context.Background(), domain.SendMessageInput{
		ListingID:   listing.ID,
		SenderID:    "student-1",
		RecipientID: "student-2",
		Body:        "hi",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMessageService_Send_Validation(t *testing.T) {
	svc, _, _, _ := newMessageService(t)

	_, err := svc.Send(context.Background(), domain.SendMessageInput{
		ListingID:   "l1",
		SenderID:    "u1",
		RecipientID: "u2",
		Body:        "",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Send(context.Background(), domain.SendMessageInput{
		ListingID:   "l1",
		SenderID:    "u1",
		RecipientID: "u1",
		Body:        "note to self",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMessageService_Thread(t *testing.T) {
	svc, messageRepo, listingRepo, _ := newMessageService(t)
	listing := activeListing()

	thread := []*domain.Message{
		{ID: "m1", SenderID: "student-1", RecipientID: "owner-1"},
		{ID: "m2", SenderID: "owner-1", RecipientID: "student-1"},
	}
	listingRepo.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)
	messageRepo.EXPECT().ListThread(mock.Anything, listing.ID, "student-1", "owner-1").Return(thread, nil)

	got, err := svc.Thread(context.Background(), listing.ID, "student-1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, thread, got)
}
