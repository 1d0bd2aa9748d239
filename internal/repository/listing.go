package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const listingColumns = `id, owner_id, title, description, price,
		maximum_occupancy, current_occupancy, lat, lng, status, rating, created_at, updated_at`

func scanListing(row interface{ Scan(...any) error }) (*domain.Listing, error) {
	var (
		l        domain.Listing
		lat, lng sql.NullFloat64
	)
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Price,
		&l.MaximumOccupancy, &l.CurrentOccupancy, &lat, &lng,
		&l.Status, &l.Rating, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat.Valid {
		l.Lat = &lat.Float64
	}
	if lng.Valid {
		l.Lng = &lng.Float64
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, owner_id, title, description, price,
				maximum_occupancy, current_occupancy, lat, lng, status, rating, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	var lat, lng any
	if l.Lat != nil {
		lat = *l.Lat
	}
	if l.Lng != nil {
		lng = *l.Lng
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.OwnerID, l.Title, l.Description, l.Price,
		l.MaximumOccupancy, l.CurrentOccupancy, lat, lng,
		l.Status, l.Rating, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

// List applies the filter with keyset-free pagination: stable id ordering
// keeps pages deterministic for the geo post-filter.
func (r *ListingRepository) List(ctx context.Context, f domain.ListingFilter) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE 1=1`
	var args []any

	if f.Status != nil {
		args = append(args, *f.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		query += ` AND price >= $` + strconv.Itoa(len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		query += ` AND price <= $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY id`

	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		args = append(args, f.PageSize)
		query += ` LIMIT $` + strconv.Itoa(len(args))
		args = append(args, (page-1)*f.PageSize)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
			  SET title = $2, description = $3, price = $4, maximum_occupancy = $5,
				  lat = $6, lng = $7, updated_at = now()
			  WHERE id = $1`

	var lat, lng any
	if l.Lat != nil {
		lat = *l.Lat
	}
	if l.Lng != nil {
		lng = *l.Lng
	}

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Title, l.Description, l.Price, l.MaximumOccupancy, lat, lng,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// UpdateStatus is a compare-and-swap on the listing status column.
func (r *ListingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ListingStatus) error {
	query := `UPDATE listings SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.InvalidTransitionError{Entity: "listing", From: string(from), To: string(to)}
	}

	return nil
}
