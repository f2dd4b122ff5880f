package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestTotalGuestIncome(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessions := &mocks.MockParkingSessionRepository{
		SumGuestFeesFunc: func(ctx context.Context, from, to time.Time) (float64, error) {
			return 275000, nil
		},
	}
	service := NewService(sessions, newTestLogger())

	// Act
	total, err := service.TotalGuestIncome(ctx, time.Now().AddDate(0, 0, -7), time.Now())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 275000 {
		t.Errorf("expected 275000, got %.0f", total)
	}
}

func TestGuestIncomeByDate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessions := &mocks.MockParkingSessionRepository{
		SumGuestFeesByDateFunc: func(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error) {
			return []domain.DailyIncome{
				{Date: "2024-01-10", Amount: 45000},
				{Date: "2024-01-11", Amount: 30000},
			}, nil
		},
	}
	service := NewService(sessions, newTestLogger())

	// Act
	rows, err := service.GuestIncomeByDate(ctx, time.Now().AddDate(0, 0, -7), time.Now())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-10" || rows[0].Amount != 45000 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

func TestReports_RejectMissingRange(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockParkingSessionRepository{}, newTestLogger())

	// Act
	_, err := service.TotalCheckins(ctx, time.Time{}, time.Now())

	// Assert
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReports_RejectInvertedRange(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockParkingSessionRepository{}, newTestLogger())

	// Act
	_, err := service.TotalCheckouts(ctx, time.Now(), time.Now().AddDate(0, 0, -1))

	// Assert
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
