package domain

import (
	"fmt"
	"time"
)

type Review struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	AuthorID  string    `json:"author_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	ListingID string
	AuthorID  string
	Rating    int
	Comment   string
}

func (i CreateReviewInput) Validate() error {
	if i.Rating < 1 || i.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}
