package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type MessageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMessageRepo(db *dbpg.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, listing_id, sender_id, recipient_id, body, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.ListingID, m.SenderID, m.RecipientID, m.Body, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	return nil
}

// ListThread returns both directions of the pair's conversation on a
// listing, oldest first.
func (r *MessageRepository) ListThread(ctx context.Context, listingID, userA, userB string) ([]*domain.Message, error) {
	query := `SELECT id, listing_id, sender_id, recipient_id, body, created_at
			  FROM messages
			  WHERE listing_id = $1
				AND ((sender_id = $2 AND recipient_id = $3) OR (sender_id = $3 AND recipient_id = $2))
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("list thread: %w", err)
	}
	defer rows.Close()

	var res []*domain.Message
	for rows.Next() {
		var m domain.Message
		if err = rows.Scan(&m.ID, &m.ListingID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
