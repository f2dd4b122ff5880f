package billing

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestCreateFee_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var savedFee *domain.Fee
	var savedHistory *domain.FeeHistory

	mockRepo := &mocks.MockFeeRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Fee, error) {
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, fee *domain.Fee) error {
			savedFee = fee
			return nil
		},
		SaveHistoryFunc: func(ctx context.Context, h *domain.FeeHistory) error {
			savedHistory = h
			return nil
		},
	}

	service := NewFeeService(mockRepo, mocks.NewMockCache(), newTestLogger())

	// Act
	fee, err := service.CreateFee(ctx, "guest_day", 10000, "daytime guest rate", "staff-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if savedFee == nil || savedFee.Name != "guest_day" {
		t.Fatal("expected fee to be saved")
	}
	if fee.ID == "" {
		t.Error("expected generated fee id")
	}
	if savedHistory == nil || savedHistory.EventType != "created" {
		t.Error("expected created history event")
	}
	if savedHistory.ApprovedBy != "staff-1" {
		t.Errorf("expected approver 'staff-1', got '%s'", savedHistory.ApprovedBy)
	}
}

func TestCreateFee_DuplicateName(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := &mocks.MockFeeRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Fee, error) {
			return &domain.Fee{ID: "fee-1", Name: name}, nil
		},
	}
	service := NewFeeService(mockRepo, mocks.NewMockCache(), newTestLogger())

	// Act
	_, err := service.CreateFee(ctx, "guest_day", 10000, "", "staff-1")

	// Assert
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCreateFee_NegativeAmount(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewFeeService(&mocks.MockFeeRepository{}, mocks.NewMockCache(), newTestLogger())

	// Act
	_, err := service.CreateFee(ctx, "guest_day", -1, "", "staff-1")

	// Assert
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteFee_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := &mocks.MockFeeRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Fee, error) {
			return nil, nil
		},
	}
	service := NewFeeService(mockRepo, mocks.NewMockCache(), newTestLogger())

	// Act
	err := service.DeleteFee(ctx, "missing", "staff-1")

	// Assert
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteFee_RecordsHistoryAndInvalidatesCache(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var savedHistory *domain.FeeHistory
	deletedKeys := []string{}

	mockRepo := &mocks.MockFeeRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Fee, error) {
			return &domain.Fee{ID: id, Name: "guest_day", Amount: 10000}, nil
		},
		SaveHistoryFunc: func(ctx context.Context, h *domain.FeeHistory) error {
			savedHistory = h
			return nil
		},
	}
	mockCache := mocks.NewMockCache()
	mockCache.DeleteFunc = func(ctx context.Context, key string) error {
		deletedKeys = append(deletedKeys, key)
		return nil
	}
	service := NewFeeService(mockRepo, mockCache, newTestLogger())

	// Act
	err := service.DeleteFee(ctx, "fee-1", "staff-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if savedHistory == nil || savedHistory.EventType != "deleted" {
		t.Error("expected deleted history event")
	}
	if len(deletedKeys) != 1 {
		t.Errorf("expected one cache invalidation, got %d", len(deletedKeys))
	}
}

func TestUpdateFee_RecordsDescriptiveHistoryEvent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var savedHistory *domain.FeeHistory

	mockRepo := &mocks.MockFeeRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Fee, error) {
			return &domain.Fee{ID: id, Name: "guest_day", Amount: 10000}, nil
		},
		UpdateFunc: func(ctx context.Context, fee *domain.Fee) error {
			return nil
		},
		SaveHistoryFunc: func(ctx context.Context, h *domain.FeeHistory) error {
			savedHistory = h
			return nil
		},
	}
	service := NewFeeService(mockRepo, mocks.NewMockCache(), newTestLogger())

	// Act
	fee, err := service.UpdateFee(ctx, "fee-1", "guest_day", 12000, "daytime guest rate", "staff-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fee.Amount != 12000 {
		t.Errorf("expected amount 12000, got %.0f", fee.Amount)
	}
	if savedHistory == nil {
		t.Fatal("expected history event")
	}
	if savedHistory.EventType != "update guest_day with 12000" {
		t.Errorf("expected descriptive update event, got '%s'", savedHistory.EventType)
	}
	if savedHistory.ApprovedBy != "staff-1" {
		t.Errorf("expected approver 'staff-1', got '%s'", savedHistory.ApprovedBy)
	}
}

func TestGuestRates_CacheMissLoadsFromRepository(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := &mocks.MockFeeRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Fee, error) {
			switch name {
			case domain.FeeNameGuestDay:
				return &domain.Fee{ID: "fee-d", Name: name, Amount: 10000}, nil
			case domain.FeeNameGuestNight:
				return &domain.Fee{ID: "fee-n", Name: name, Amount: 15000}, nil
			}
			return nil, nil
		},
	}
	service := NewFeeService(mockRepo, mocks.NewMockCache(), newTestLogger())

	// Act
	day, night, err := service.GuestRates(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if day != 10000 || night != 15000 {
		t.Errorf("expected rates 10000/15000, got %.0f/%.0f", day, night)
	}
}

func TestGuestRates_CacheHitSkipsRepository(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repoCalls := 0
	mockRepo := &mocks.MockFeeRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Fee, error) {
			repoCalls++
			return nil, errors.New("should not be called")
		},
	}
	mockCache := mocks.NewMockCache()
	mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return `{"day":10000,"night":15000}`, nil
	}
	service := NewFeeService(mockRepo, mockCache, newTestLogger())

	// Act
	day, night, err := service.GuestRates(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if day != 10000 || night != 15000 {
		t.Errorf("expected cached rates 10000/15000, got %.0f/%.0f", day, night)
	}
	if repoCalls != 0 {
		t.Errorf("expected no repository calls, got %d", repoCalls)
	}
}

func TestGuestRates_MissingFee(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := &mocks.MockFeeRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Fee, error) {
			return nil, nil
		},
	}
	service := NewFeeService(mockRepo, mocks.NewMockCache(), newTestLogger())

	// Act
	_, _, err := service.GuestRates(ctx)

	// Assert
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
