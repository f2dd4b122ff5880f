package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

const (
	guestRatesCacheKey = "fees:guest_rates"
	guestRatesCacheTTL = 5 * time.Minute
)

// Fee history event types. Updates record a descriptive event carrying the
// new name and amount, matching the audit trail the admin screens render.
const (
	feeEventCreated = "created"
	feeEventDeleted = "deleted"
)

func feeEventUpdated(name string, amount float64) string {
	return fmt.Sprintf("update %s with %.0f", name, amount)
}

type cachedGuestRates struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
}

// FeeService manages rate records, their audit trail, and the cached guest
// day/night rate pair checkout evaluation reads on every gate request.
type FeeService struct {
	fees  ports.FeeRepository
	cache ports.Cache
	log   *zap.Logger
}

func NewFeeService(fees ports.FeeRepository, cache ports.Cache, log *zap.Logger) *FeeService {
	return &FeeService{
		fees:  fees,
		cache: cache,
		log:   log,
	}
}

func (s *FeeService) CreateFee(ctx context.Context, name string, amount float64, description, approvedBy string) (*domain.Fee, error) {
	if name == "" {
		return nil, fmt.Errorf("fee name is required: %w", domain.ErrValidation)
	}
	if amount < 0 {
		return nil, fmt.Errorf("fee amount must not be negative: %w", domain.ErrValidation)
	}

	existing, err := s.fees.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing fee: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("fee %q already exists: %w", name, domain.ErrConflict)
	}

	fee := &domain.Fee{
		ID:          uuid.New().String(),
		Name:        name,
		Amount:      amount,
		Description: description,
	}
	if err := s.fees.Save(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to save fee: %w", err)
	}

	s.recordHistory(ctx, fee.ID, feeEventCreated, approvedBy)
	s.invalidateGuestRates(ctx)

	s.log.Info("Fee created",
		zap.String("fee_id", fee.ID),
		zap.String("name", name),
		zap.Float64("amount", amount),
	)
	return fee, nil
}

func (s *FeeService) UpdateFee(ctx context.Context, id, name string, amount float64, description, approvedBy string) (*domain.Fee, error) {
	if amount < 0 {
		return nil, fmt.Errorf("fee amount must not be negative: %w", domain.ErrValidation)
	}

	fee, err := s.fees.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee: %w", err)
	}
	if fee == nil {
		return nil, fmt.Errorf("fee %s: %w", id, domain.ErrNotFound)
	}

	if name != "" {
		fee.Name = name
	}
	fee.Amount = amount
	fee.Description = description

	if err := s.fees.Update(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to update fee: %w", err)
	}

	s.recordHistory(ctx, fee.ID, feeEventUpdated(fee.Name, fee.Amount), approvedBy)
	s.invalidateGuestRates(ctx)

	s.log.Info("Fee updated",
		zap.String("fee_id", fee.ID),
		zap.Float64("amount", amount),
	)
	return fee, nil
}

func (s *FeeService) DeleteFee(ctx context.Context, id, approvedBy string) error {
	fee, err := s.fees.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load fee: %w", err)
	}
	if fee == nil {
		return fmt.Errorf("fee %s: %w", id, domain.ErrNotFound)
	}

	if err := s.fees.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete fee: %w", err)
	}

	s.recordHistory(ctx, id, feeEventDeleted, approvedBy)
	s.invalidateGuestRates(ctx)

	s.log.Info("Fee deleted", zap.String("fee_id", id), zap.String("approved_by", approvedBy))
	return nil
}

func (s *FeeService) GetFee(ctx context.Context, id string) (*domain.Fee, error) {
	fee, err := s.fees.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee: %w", err)
	}
	if fee == nil {
		return nil, fmt.Errorf("fee %s: %w", id, domain.ErrNotFound)
	}
	return fee, nil
}

func (s *FeeService) ListFees(ctx context.Context) ([]domain.Fee, error) {
	return s.fees.FindAll(ctx)
}

func (s *FeeService) ListFeesWithDeleted(ctx context.Context) ([]domain.Fee, error) {
	return s.fees.FindAllWithDeleted(ctx)
}

func (s *FeeService) ListResidentFees(ctx context.Context) ([]domain.Fee, error) {
	fees, err := s.fees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resident := make([]domain.Fee, 0, len(fees))
	for _, f := range fees {
		if f.Name != domain.FeeNameGuestDay && f.Name != domain.FeeNameGuestNight {
			resident = append(resident, f)
		}
	}
	return resident, nil
}

func (s *FeeService) GetFeeHistory(ctx context.Context, feeID string) ([]domain.FeeHistory, error) {
	fee, err := s.fees.FindByID(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee: %w", err)
	}
	if fee == nil {
		return nil, fmt.Errorf("fee %s: %w", feeID, domain.ErrNotFound)
	}
	return s.fees.FindHistoryByFeeID(ctx, feeID)
}

// GuestRates returns the guest day/night rate pair, from cache when fresh.
func (s *FeeService) GuestRates(ctx context.Context) (float64, float64, error) {
	if raw, err := s.cache.Get(ctx, guestRatesCacheKey); err == nil && raw != "" {
		var cached cachedGuestRates
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached.Day, cached.Night, nil
		}
	}

	dayFee, err := s.fees.FindByName(ctx, domain.FeeNameGuestDay)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load guest day fee: %w", err)
	}
	if dayFee == nil {
		return 0, 0, fmt.Errorf("fee %s: %w", domain.FeeNameGuestDay, domain.ErrNotFound)
	}

	nightFee, err := s.fees.FindByName(ctx, domain.FeeNameGuestNight)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load guest night fee: %w", err)
	}
	if nightFee == nil {
		return 0, 0, fmt.Errorf("fee %s: %w", domain.FeeNameGuestNight, domain.ErrNotFound)
	}

	data, err := json.Marshal(cachedGuestRates{Day: dayFee.Amount, Night: nightFee.Amount})
	if err == nil {
		if err := s.cache.Set(ctx, guestRatesCacheKey, string(data), guestRatesCacheTTL); err != nil {
			s.log.Warn("Failed to cache guest rates", zap.Error(err))
		}
	}

	return dayFee.Amount, nightFee.Amount, nil
}

// recordHistory appends an audit row. A failed audit write is logged and
// does not fail the mutation it describes.
func (s *FeeService) recordHistory(ctx context.Context, feeID, eventType, approvedBy string) {
	h := &domain.FeeHistory{
		ID:         uuid.New().String(),
		FeeID:      feeID,
		EventType:  eventType,
		ApprovedBy: approvedBy,
	}
	if err := s.fees.SaveHistory(ctx, h); err != nil {
		s.log.Error("Failed to record fee history",
			zap.String("fee_id", feeID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func (s *FeeService) invalidateGuestRates(ctx context.Context) {
	if err := s.cache.Delete(ctx, guestRatesCacheKey); err != nil {
		s.log.Warn("Failed to invalidate guest rate cache", zap.Error(err))
	}
}
