package domain

import (
	"fmt"
	"time"
)

// Message belongs to a listing-scoped thread between two users, typically a
// student and the listing owner.
type Message struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listing_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendMessageInput struct {
	ListingID   string
	SenderID    string
	RecipientID string
	Body        string
}

func (i SendMessageInput) Validate() error {
	if i.Body == "" {
		return fmt.Errorf("%w: message body is required", ErrValidation)
	}
	if i.SenderID == i.RecipientID {
		return fmt.Errorf("%w: cannot message yourself", ErrValidation)
	}
	return nil
}
