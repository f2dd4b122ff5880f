package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// Service serves the admin aggregates over gate activity.
type Service struct {
	sessions ports.ParkingSessionRepository
	log      *zap.Logger
}

func NewService(sessions ports.ParkingSessionRepository, log *zap.Logger) *Service {
	return &Service{
		sessions: sessions,
		log:      log,
	}
}

func (s *Service) TotalCheckins(ctx context.Context, from, to time.Time) (int64, error) {
	if err := validateRange(from, to); err != nil {
		return 0, err
	}
	return s.sessions.CountCheckins(ctx, from, to)
}

func (s *Service) TotalCheckouts(ctx context.Context, from, to time.Time) (int64, error) {
	if err := validateRange(from, to); err != nil {
		return 0, err
	}
	return s.sessions.CountCheckouts(ctx, from, to)
}

func (s *Service) TotalGuestIncome(ctx context.Context, from, to time.Time) (float64, error) {
	if err := validateRange(from, to); err != nil {
		return 0, err
	}
	return s.sessions.SumGuestFees(ctx, from, to)
}

func (s *Service) GuestIncomeByDate(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.sessions.SumGuestFeesByDate(ctx, from, to)
}

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("a date range is required: %w", domain.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("range end precedes start: %w", domain.ErrValidation)
	}
	return nil
}
