package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type FeeRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFeeRepository(db *gorm.DB, log *zap.Logger) ports.FeeRepository {
	return &FeeRepository{
		db:  db,
		log: log,
	}
}

func (r *FeeRepository) Save(ctx context.Context, fee *domain.Fee) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

func (r *FeeRepository) Update(ctx context.Context, fee *domain.Fee) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

// Delete soft-deletes; gorm.DeletedAt on the model makes this set the
// deleted_at column rather than removing the row.
func (r *FeeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Fee{}, "id = ?", id).Error
}

func (r *FeeRepository) FindByID(ctx context.Context, id string) (*domain.Fee, error) {
	var fee domain.Fee
	err := r.db.WithContext(ctx).First(&fee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fee, nil
}

func (r *FeeRepository) FindByName(ctx context.Context, name string) (*domain.Fee, error) {
	var fee domain.Fee
	err := r.db.WithContext(ctx).First(&fee, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fee, nil
}

func (r *FeeRepository) FindAll(ctx context.Context) ([]domain.Fee, error) {
	var fees []domain.Fee
	err := r.db.WithContext(ctx).Order("name asc").Find(&fees).Error
	return fees, err
}

func (r *FeeRepository) FindAllWithDeleted(ctx context.Context) ([]domain.Fee, error) {
	var fees []domain.Fee
	err := r.db.WithContext(ctx).Unscoped().Order("name asc").Find(&fees).Error
	return fees, err
}

func (r *FeeRepository) SaveHistory(ctx context.Context, h *domain.FeeHistory) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *FeeRepository) FindHistoryByFeeID(ctx context.Context, feeID string) ([]domain.FeeHistory, error) {
	var history []domain.FeeHistory
	err := r.db.WithContext(ctx).
		Where("fee_id = ?", feeID).
		Order("created_at desc").
		Find(&history).Error
	return history, err
}
