package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Daemon403/housing-platform/internal/domain"
)

// 23P01 is raised by the exclusion constraint on committed booking ranges.
// It backstops the FOR UPDATE re-check inside Approve.
const pgExclusionViolation = "23P01"

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, listing_id, renter_id, start_date, end_date,
		status, payment_state, COALESCE(termination_reason, ''), created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.ListingID, &b.RenterID, &b.StartDate, &b.EndDate,
		&b.Status, &b.PaymentState, &b.TerminationReason, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a pending booking. The listing row is locked for the span
// of the transaction so the committed-overlap check cannot race with a
// concurrent approval. Overlapping pending requests are allowed to coexist;
// the conflict between them resolves at approval time.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var listingStatus domain.ListingStatus
	lockQuery := `SELECT status FROM listings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.ListingID).Scan(&listingStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}

	if listingStatus != domain.ListingStatusActive {
		return fmt.Errorf("%w: listing is not active", domain.ErrBookingConflict)
	}

	var overlaps bool
	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1 AND status = ANY($2)
			  AND start_date < $4 AND end_date > $3)`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.ListingID,
		pq.Array(domain.CommittedStatuses), b.StartDate, b.EndDate,
	).Scan(&overlaps); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return domain.ErrBookingConflict
	}

	insert := `INSERT INTO bookings (id, listing_id, renter_id, start_date, end_date, status, payment_state, created_at, updated_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, insert, b.ID, b.ListingID, b.RenterID, b.StartDate, b.EndDate,
		b.Status, b.PaymentState, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// ExistsOverlap reports whether any booking in the given statuses overlaps
// [start, end) on the listing. excludeID skips one booking, used when
// re-validating an existing booking against its peers.
func (r *BookingRepository) ExistsOverlap(
	ctx context.Context,
	listingID string,
	start, end time.Time,
	statuses []domain.BookingStatus,
	excludeID string,
) (bool, error) {
	// The id column is uuid, so the no-exclusion case must short-circuit
	// before the comparison: '' never parses as a uuid.
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1 AND status = ANY($2)
			  AND ($5 = '' OR id::text <> $5)
			  AND start_date < $4 AND end_date > $3)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		listingID, pq.Array(statuses), start, end, excludeID,
	)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return exists, nil
}

// Approve runs the availability re-check and the pending→approved update as
// one atomic unit: the listing row lock serializes concurrent approvals, the
// status predicate acts as a compare-and-swap, and the exclusion constraint
// on committed ranges is the last line of defence.
func (r *BookingRepository) Approve(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT 1 FROM listings WHERE id = $1 FOR UPDATE`
	var one int
	if err = tx.QueryRowContext(ctx, lockQuery, b.ListingID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}

	// Rival pending requests do not block each other here; only a committed
	// booking holds the dates. Whichever rival is approved first wins, the
	// rest fail this re-check.
	var overlaps bool
	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1 AND status = ANY($2)
			  AND id <> $3
			  AND start_date < $5 AND end_date > $4)`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.ListingID,
		pq.Array(domain.CommittedStatuses), b.ID, b.StartDate, b.EndDate,
	).Scan(&overlaps); err != nil {
		return fmt.Errorf("recheck availability: %w", err)
	}
	if overlaps {
		return domain.ErrBookingConflict
	}

	update := `UPDATE bookings SET status = $2, updated_at = now()
			   WHERE id = $1 AND status = $3`
	res, err := tx.ExecContext(ctx, update, b.ID, domain.BookingStatusApproved, domain.BookingStatusPending)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("approve booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("approve rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.InvalidTransitionError{
			Entity: "booking",
			From:   string(b.Status),
			To:     string(domain.BookingStatusApproved),
		}
	}

	err = tx.Commit()
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("commit approve: %w", err)
	}

	return nil
}

// UpdateStatus performs a compare-and-swap status change. Zero rows affected
// means the booking either vanished or already left the expected status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.InvalidTransitionError{Entity: "booking", From: string(from), To: string(to)}
	}

	return nil
}

// Terminate ends an active booking early and releases its occupancy slot in
// the same transaction.
func (r *BookingRepository) Terminate(ctx context.Context, id, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE bookings SET status = $2, termination_reason = $3, updated_at = now()
			   WHERE id = $1 AND status = $4
			   RETURNING listing_id`
	var listingID string
	err = tx.QueryRowContext(ctx, update, id, domain.BookingStatusTerminated, reason, domain.BookingStatusActive).
		Scan(&listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.InvalidTransitionError{
				Entity: "booking",
				From:   string(domain.BookingStatusActive),
				To:     string(domain.BookingStatusTerminated),
			}
		}
		return fmt.Errorf("terminate booking: %w", err)
	}

	if err = recomputeOccupancyTx(ctx, tx, listingID); err != nil {
		return err
	}

	return tx.Commit()
}

// Complete closes out an active booking and releases its occupancy slot in
// the same transaction.
func (r *BookingRepository) Complete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE bookings SET status = $2, updated_at = now()
			   WHERE id = $1 AND status = $3
			   RETURNING listing_id`
	var listingID string
	err = tx.QueryRowContext(ctx, update, id, domain.BookingStatusCompleted, domain.BookingStatusActive).
		Scan(&listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.InvalidTransitionError{
				Entity: "booking",
				From:   string(domain.BookingStatusActive),
				To:     string(domain.BookingStatusCompleted),
			}
		}
		return fmt.Errorf("complete booking: %w", err)
	}

	if err = recomputeOccupancyTx(ctx, tx, listingID); err != nil {
		return err
	}

	return tx.Commit()
}

// SetPaymentState compare-and-swaps the payment state.
func (r *BookingRepository) SetPaymentState(ctx context.Context, id string, from, to domain.PaymentState) error {
	query := `UPDATE bookings SET payment_state = $3, updated_at = now()
			  WHERE id = $1 AND payment_state = $2`

	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update payment state: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment state rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.InvalidTransitionError{Entity: "booking payment", From: string(from), To: string(to)}
	}

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE renter_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE listing_id = $1
			  ORDER BY start_date`

	return r.list(ctx, query, listingID)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// ExistsCompleted reports whether the renter has a completed stay on the
// listing. Reviews are gated on it.
func (r *BookingRepository) ExistsCompleted(ctx context.Context, listingID, renterID string) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1 AND renter_id = $2 AND status = $3)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, listingID, renterID, domain.BookingStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("check completed booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan completed booking: %w", err)
	}

	return exists, nil
}

// ExistsActive reports whether the renter currently occupies the listing.
// Maintenance requests are gated on it.
func (r *BookingRepository) ExistsActive(ctx context.Context, listingID, renterID string) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1 AND renter_id = $2 AND status = $3)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, listingID, renterID, domain.BookingStatusActive)
	if err != nil {
		return false, fmt.Errorf("check active booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan active booking: %w", err)
	}

	return exists, nil
}

// ActivateDue flips approved bookings whose start date has arrived to
// active and recomputes occupancy for the listings touched.
func (r *BookingRepository) ActivateDue(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings SET status = $2, updated_at = now()
			  WHERE status = $1 AND start_date <= $3
			  RETURNING ` + bookingColumns

	return r.transitionDue(ctx, query, domain.BookingStatusApproved, domain.BookingStatusActive, today)
}

// CompleteDue closes out active bookings whose end date has passed.
func (r *BookingRepository) CompleteDue(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings SET status = $2, updated_at = now()
			  WHERE status = $1 AND end_date <= $3
			  RETURNING ` + bookingColumns

	return r.transitionDue(ctx, query, domain.BookingStatusActive, domain.BookingStatusCompleted, today)
}

func (r *BookingRepository) transitionDue(
	ctx context.Context,
	query string,
	from, to domain.BookingStatus,
	today time.Time,
) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, query, from, to, today)
	if err != nil {
		return nil, fmt.Errorf("transition due bookings: %w", err)
	}

	var res []*domain.Booking
	seen := map[string]struct{}{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
		seen[b.ListingID] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for listingID := range seen {
		if err = recomputeOccupancyTx(ctx, tx, listingID); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit due transition: %w", err)
	}

	return res, nil
}

// recomputeOccupancyTx derives current occupancy from active bookings inside
// the caller's transaction. The write path owns the recomputation; nothing
// happens behind lifecycle hooks.
func recomputeOccupancyTx(ctx context.Context, tx *sql.Tx, listingID string) error {
	query := `UPDATE listings
			  SET current_occupancy = LEAST(maximum_occupancy, (
					SELECT COUNT(*) FROM bookings
					WHERE listing_id = $1 AND status = $2)),
				  updated_at = now()
			  WHERE id = $1`

	if _, err := tx.ExecContext(ctx, query, listingID, domain.BookingStatusActive); err != nil {
		return fmt.Errorf("recompute occupancy: %w", err)
	}

	return nil
}
