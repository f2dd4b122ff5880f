package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type ParkingOrderRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewParkingOrderRepository(db *gorm.DB, log *zap.Logger) ports.ParkingOrderRepository {
	return &ParkingOrderRepository{
		db:  db,
		log: log,
	}
}

func (r *ParkingOrderRepository) Save(ctx context.Context, order *domain.ParkingOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *ParkingOrderRepository) Update(ctx context.Context, order *domain.ParkingOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *ParkingOrderRepository) FindByID(ctx context.Context, id string) (*domain.ParkingOrder, error) {
	var order domain.ParkingOrder
	err := r.db.WithContext(ctx).Preload("ParkingType").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *ParkingOrderRepository) FindOpenByBikeID(ctx context.Context, bikeID string) (*domain.ParkingOrder, error) {
	var order domain.ParkingOrder
	open := []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusActive}
	err := r.db.WithContext(ctx).
		Where("bike_id = ? AND status IN ?", bikeID, open).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *ParkingOrderRepository) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error) {
	var orders []domain.ParkingOrder
	q := r.db.WithContext(ctx).Preload("Bike").Preload("ParkingType")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.DateStart.IsZero() {
		q = q.Where("created_at >= ?", filter.DateStart)
	}
	if !filter.DateEnd.IsZero() {
		// DateEnd arrives advanced to the next midnight; exclusive keeps
		// rows created exactly at that midnight out of the window.
		q = q.Where("created_at < ?", filter.DateEnd)
	}
	err := q.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *ParkingOrderRepository) FindByBikeID(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	var orders []domain.ParkingOrder
	err := r.db.WithContext(ctx).
		Preload("ParkingType").
		Where("bike_id = ?", bikeID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *ParkingOrderRepository) FindPendingByBikeID(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	var orders []domain.ParkingOrder
	err := r.db.WithContext(ctx).
		Preload("ParkingType").
		Where("bike_id = ? AND status = ?", bikeID, domain.OrderStatusPending).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *ParkingOrderRepository) FindActiveExpiringBy(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
	var orders []domain.ParkingOrder
	err := r.db.WithContext(ctx).
		Preload("ParkingType").
		Preload("Bike").
		Where("status = ? AND expired_date <= ?", domain.OrderStatusActive, deadline).
		Find(&orders).Error
	return orders, err
}

func (r *ParkingOrderRepository) FindPendingOverdue(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
	var orders []domain.ParkingOrder
	err := r.db.WithContext(ctx).
		Where("status = ? AND expired_date <= ?", domain.OrderStatusPending, deadline).
		Find(&orders).Error
	return orders, err
}
