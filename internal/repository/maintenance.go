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

type MaintenanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMaintenanceRepo(db *dbpg.DB) *MaintenanceRepository {
	return &MaintenanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	query := `INSERT INTO maintenance_requests (id, listing_id, renter_id, description, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.ListingID, m.RenterID, m.Description, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance request: %w", err)
	}

	return nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	query := `SELECT id, listing_id, renter_id, description, status, created_at, updated_at
			  FROM maintenance_requests WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}

	var m domain.MaintenanceRequest
	if err = row.Scan(
		&m.ID, &m.ListingID, &m.RenterID, &m.Description, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("scan maintenance request: %w", err)
	}

	return &m, nil
}

// UpdateStatus compare-and-swaps the request status.
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id string, from, to domain.MaintenanceStatus) error {
	query := `UPDATE maintenance_requests SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update maintenance status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.InvalidTransitionError{Entity: "maintenance request", From: string(from), To: string(to)}
	}

	return nil
}

func (r *MaintenanceRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.MaintenanceRequest, error) {
	query := `SELECT id, listing_id, renter_id, description, status, created_at, updated_at
			  FROM maintenance_requests
			  WHERE listing_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, listingID)
}

func (r *MaintenanceRepository) ListByUser(ctx context.Context, renterID string) ([]*domain.MaintenanceRequest, error) {
	query := `SELECT id, listing_id, renter_id, description, status, created_at, updated_at
			  FROM maintenance_requests
			  WHERE renter_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, renterID)
}

func (r *MaintenanceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.MaintenanceRequest, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.MaintenanceRequest
	for rows.Next() {
		var m domain.MaintenanceRequest
		if err = rows.Scan(
			&m.ID, &m.ListingID, &m.RenterID, &m.Description, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance request: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
