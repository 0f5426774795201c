package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresAndVerifies(t *testing.T) {
	payments := mocks.NewMockBookingExpirer(t)
	accounts := mocks.NewMockAccountVerifier(t)
	log := newTestLogger(t)

	ttl := 15 * time.Minute
	s := New(payments, accounts, 50*time.Millisecond, ttl, log)

	cancelled := []*domain.Booking{
		{ID: "b1", CourtID: "c1", UserID: "u1"},
	}
	payments.EXPECT().ExpireStale(mock.Anything, ttl).Return(cancelled, nil)
	accounts.EXPECT().VerifyPending(mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(payments.Calls), 1)
	assert.GreaterOrEqual(t, len(accounts.Calls), 1)
}

func TestScheduler_Tick_ExpireErrorDoesNotSkipVerify(t *testing.T) {
	payments := mocks.NewMockBookingExpirer(t)
	accounts := mocks.NewMockAccountVerifier(t)
	log := newTestLogger(t)

	s := New(payments, accounts, 50*time.Millisecond, time.Minute, log)

	payments.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
	accounts.EXPECT().VerifyPending(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(accounts.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	payments := mocks.NewMockBookingExpirer(t)
	accounts := mocks.NewMockAccountVerifier(t)
	log := newTestLogger(t)

	s := New(payments, accounts, time.Second, time.Minute, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	payments := mocks.NewMockBookingExpirer(t)
	accounts := mocks.NewMockAccountVerifier(t)
	log := newTestLogger(t)

	s := New(payments, accounts, 30*time.Millisecond, time.Minute, log)

	payments.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(nil, nil).Times(3)
	accounts.EXPECT().VerifyPending(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(payments.Calls), 3)
}
