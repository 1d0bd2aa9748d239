package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ActivatesAndCompletes(t *testing.T) {
	svc := mocks.NewMockBookingTransitioner(t)
	log := newTestLogger(t)

	s := New(svc, 50*time.Millisecond, log)

	activated := []*domain.Booking{
		{ID: "b1", ListingID: "l1", RenterID: "u1", Status: domain.BookingStatusActive},
	}
	completed := []*domain.Booking{
		{ID: "b2", ListingID: "l2", RenterID: "u2", Status: domain.BookingStatusCompleted},
	}
	svc.EXPECT().ActivateDue(mock.Anything).Return(activated, nil)
	svc.EXPECT().CompleteDue(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_Tick_ActivateErrorDoesNotSkipComplete(t *testing.T) {
	svc := mocks.NewMockBookingTransitioner(t)
	log := newTestLogger(t)

	s := New(svc, 50*time.Millisecond, log)

	svc.EXPECT().ActivateDue(mock.Anything).Return(nil, errors.New("db down"))
	svc.EXPECT().CompleteDue(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	svc := mocks.NewMockBookingTransitioner(t)
	log := newTestLogger(t)

	s := New(svc, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
