package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestRunOnce_FiresAllSweeps(t *testing.T) {
	// Arrange
	ctx := context.Background()
	renewals, overdue, notices := 0, 0, 0

	orders := &mocks.MockOrderService{
		CreateDueRenewalsFunc: func(ctx context.Context, now time.Time) (int, error) {
			renewals++
			return 3, nil
		},
		CancelOverdueOrdersFunc: func(ctx context.Context, now time.Time) (int, error) {
			overdue++
			return 1, nil
		},
	}
	notifications := &mocks.MockNotificationService{
		SendExpirationNotificationsFunc: func(ctx context.Context, now time.Time) (int, error) {
			notices++
			return 3, nil
		},
	}

	s := New(orders, notifications, Config{RunAt: "00:05"}, newTestLogger())

	// Act
	s.RunOnce(ctx, time.Now())

	// Assert
	if renewals != 1 || overdue != 1 || notices != 1 {
		t.Errorf("expected each sweep once, got renewals=%d overdue=%d notices=%d", renewals, overdue, notices)
	}
}

func TestRunOnce_SweepFailureDoesNotBlockOthers(t *testing.T) {
	// Arrange
	ctx := context.Background()
	overdue, notices := 0, 0

	orders := &mocks.MockOrderService{
		CreateDueRenewalsFunc: func(ctx context.Context, now time.Time) (int, error) {
			return 0, errors.New("db down")
		},
		CancelOverdueOrdersFunc: func(ctx context.Context, now time.Time) (int, error) {
			overdue++
			return 0, nil
		},
	}
	notifications := &mocks.MockNotificationService{
		SendExpirationNotificationsFunc: func(ctx context.Context, now time.Time) (int, error) {
			notices++
			return 0, nil
		},
	}

	s := New(orders, notifications, Config{}, newTestLogger())

	// Act
	s.RunOnce(ctx, time.Now())

	// Assert
	if overdue != 1 || notices != 1 {
		t.Errorf("expected later sweeps to run, got overdue=%d notices=%d", overdue, notices)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	s := New(&mocks.MockOrderService{}, &mocks.MockNotificationService{}, Config{RunAt: "00:05"}, newTestLogger())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Act
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
