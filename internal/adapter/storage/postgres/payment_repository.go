package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type PaymentRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPaymentRepository(db *gorm.DB, log *zap.Logger) ports.PaymentRepository {
	return &PaymentRepository{
		db:  db,
		log: log,
	}
}

// SaveWithOrderActivation writes the payment and flips its order from
// pending to active in a single transaction. The status predicate in the
// UPDATE guards against a concurrent activation of the same order.
func (r *PaymentRepository) SaveWithOrderActivation(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}
		res := tx.Model(&domain.ParkingOrder{}).
			Where("id = ? AND status = ?", payment.ParkingOrderID, domain.OrderStatusPending).
			Update("status", domain.OrderStatusActive)
		if res.Error != nil {
			return fmt.Errorf("failed to activate order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order %s is not pending: %w", payment.ParkingOrderID, domain.ErrConflict)
		}
		return nil
	})
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("parking_order_id = ?", orderID).
		Order("created_at desc").
		Find(&payments).Error
	return payments, err
}
