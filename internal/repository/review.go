package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the review and recomputes the listing's average rating in
// the same transaction. The write path owns the recomputation.
func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO reviews (id, listing_id, author_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, query, rev.ID, rev.ListingID, rev.AuthorID, rev.Rating, rev.Comment, rev.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	if err = recomputeRatingTx(ctx, tx, rev.ListingID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT id, listing_id, author_id, rating, comment, created_at
			  FROM reviews WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	var rev domain.Review
	if err = row.Scan(
		&rev.ID, &rev.ListingID, &rev.AuthorID, &rev.Rating, &rev.Comment, &rev.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &rev, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var listingID string
	query := `DELETE FROM reviews WHERE id = $1 RETURNING listing_id`
	if err = tx.QueryRowContext(ctx, query, id).Scan(&listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReviewNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}

	if err = recomputeRatingTx(ctx, tx, listingID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	query := `SELECT id, listing_id, author_id, rating, comment, created_at
			  FROM reviews
			  WHERE listing_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rev domain.Review
		if err = rows.Scan(
			&rev.ID, &rev.ListingID, &rev.AuthorID, &rev.Rating, &rev.Comment, &rev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rev)
	}

	return res, rows.Err()
}

func recomputeRatingTx(ctx context.Context, tx *sql.Tx, listingID string) error {
	query := `UPDATE listings
			  SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE listing_id = $1), 0),
				  updated_at = now()
			  WHERE id = $1`

	if _, err := tx.ExecContext(ctx, query, listingID); err != nil {
		return fmt.Errorf("recompute rating: %w", err)
	}

	return nil
}
