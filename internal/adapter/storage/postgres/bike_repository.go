package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type BikeRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBikeRepository(db *gorm.DB, log *zap.Logger) ports.BikeRepository {
	return &BikeRepository{
		db:  db,
		log: log,
	}
}

func (r *BikeRepository) Save(ctx context.Context, bike *domain.Bike) error {
	return r.db.WithContext(ctx).Save(bike).Error
}

func (r *BikeRepository) FindByID(ctx context.Context, id string) (*domain.Bike, error) {
	var bike domain.Bike
	err := r.db.WithContext(ctx).First(&bike, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bike, nil
}

func (r *BikeRepository) FindByPlate(ctx context.Context, plateNumber string) (*domain.Bike, error) {
	var bike domain.Bike
	err := r.db.WithContext(ctx).First(&bike, "plate_number = ?", plateNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bike, nil
}

func (r *BikeRepository) FindByPlateAndUser(ctx context.Context, plateNumber, userID string) (*domain.Bike, error) {
	var bike domain.Bike
	err := r.db.WithContext(ctx).
		First(&bike, "plate_number = ? AND user_id = ?", plateNumber, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bike, nil
}

func (r *BikeRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Bike, error) {
	var bikes []domain.Bike
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bikes).Error
	return bikes, err
}

func (r *BikeRepository) FindAll(ctx context.Context) ([]domain.Bike, error) {
	var bikes []domain.Bike
	err := r.db.WithContext(ctx).Order("plate_number asc").Find(&bikes).Error
	return bikes, err
}
