package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type ParkingTypeRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewParkingTypeRepository(db *gorm.DB, log *zap.Logger) ports.ParkingTypeRepository {
	return &ParkingTypeRepository{
		db:  db,
		log: log,
	}
}

func (r *ParkingTypeRepository) Save(ctx context.Context, pt *domain.ParkingType) error {
	return r.db.WithContext(ctx).Save(pt).Error
}

func (r *ParkingTypeRepository) FindByID(ctx context.Context, id string) (*domain.ParkingType, error) {
	var pt domain.ParkingType
	err := r.db.WithContext(ctx).First(&pt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pt, nil
}

func (r *ParkingTypeRepository) FindByName(ctx context.Context, name string) (*domain.ParkingType, error) {
	var pt domain.ParkingType
	err := r.db.WithContext(ctx).First(&pt, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pt, nil
}

func (r *ParkingTypeRepository) FindAll(ctx context.Context) ([]domain.ParkingType, error) {
	var types []domain.ParkingType
	err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error
	return types, err
}
