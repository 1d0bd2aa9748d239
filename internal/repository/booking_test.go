package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Daemon403/housing-platform/internal/domain"
)

func newBookingRepoMock(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(&dbpg.DB{Master: db}), mock
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "aaaaaaaa-0000-0000-0000-000000000001",
		ListingID: "11111111-0000-0000-0000-000000000001",
		RenterID:  "22222222-0000-0000-0000-000000000001",
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.BookingStatusPending,
	}
}

// A rival pending request on the same dates must not block approval: the
// re-check looks at committed statuses only, so whichever rival is approved
// first wins.
func TestBookingRepository_Approve_RivalPendingDoesNotBlock(t *testing.T) {
	repo, mock := newBookingRepoMock(t)
	b := pendingBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM listings WHERE id = $1 FOR UPDATE")).
		WithArgs(b.ListingID).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(b.ListingID, pq.Array(domain.CommittedStatuses), b.ID, b.StartDate, b.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(b.ID, domain.BookingStatusApproved, domain.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Approve(context.Background(), b))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Approve_CommittedRivalConflicts(t *testing.T) {
	repo, mock := newBookingRepoMock(t)
	b := pendingBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM listings WHERE id = $1 FOR UPDATE")).
		WithArgs(b.ListingID).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(b.ListingID, pq.Array(domain.CommittedStatuses), b.ID, b.StartDate, b.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Approve(context.Background(), b)
	require.ErrorIs(t, err, domain.ErrBookingConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The availability endpoint passes an empty excludeID; the query must not
// try to compare '' against the uuid id column.
func TestBookingRepository_ExistsOverlap_EmptyExcludeID(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	listingID := "11111111-0000-0000-0000-000000000001"
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`($5 = '' OR id::text <> $5)`)).
		WithArgs(listingID, pq.Array(domain.BlockingStatuses), start, end, "").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.ExistsOverlap(context.Background(), listingID, start, end, domain.BlockingStatuses, "")
	require.NoError(t, err)
	assert.True(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ExistsOverlap_WithExcludeID(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	listingID := "11111111-0000-0000-0000-000000000001"
	excludeID := "aaaaaaaa-0000-0000-0000-000000000001"
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(listingID, pq.Array(domain.BlockingStatuses), start, end, excludeID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	got, err := repo.ExistsOverlap(context.Background(), listingID, start, end, domain.BlockingStatuses, excludeID)
	require.NoError(t, err)
	assert.False(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
