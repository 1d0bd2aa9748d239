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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, booking_id, payer_id, amount, kind, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.BookingID, p.PayerID, p.Amount, p.Kind, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT id, booking_id, payer_id, amount, kind, created_at
			  FROM payments WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = row.Scan(&p.ID, &p.BookingID, &p.PayerID, &p.Amount, &p.Kind, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	query := `SELECT id, booking_id, payer_id, amount, kind, created_at
			  FROM payments
			  WHERE booking_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err = rows.Scan(&p.ID, &p.BookingID, &p.PayerID, &p.Amount, &p.Kind, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
