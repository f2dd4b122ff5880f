package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/adapter/queue"
	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// Service records settled payments against parking orders. The payment row
// and the order's pending to active flip commit as one transaction in the
// repository.
type Service struct {
	payments ports.PaymentRepository
	orders   ports.ParkingOrderRepository
	mq       queue.MessageQueue
	log      *zap.Logger
}

func NewService(
	payments ports.PaymentRepository,
	orders ports.ParkingOrderRepository,
	mq queue.MessageQueue,
	log *zap.Logger,
) *Service {
	return &Service{
		payments: payments,
		orders:   orders,
		mq:       mq,
		log:      log,
	}
}

func (s *Service) ProcessPayment(ctx context.Context, orderID, method string, amount float64) (*domain.Payment, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order id is required: %w", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", domain.ErrValidation)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	if order.Status != domain.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s, not payable: %w", orderID, order.Status, domain.ErrConflict)
	}
	if amount != order.Amount {
		return nil, fmt.Errorf("payment amount %.0f does not match order amount %.0f: %w", amount, order.Amount, domain.ErrValidation)
	}

	payment := &domain.Payment{
		ID:             uuid.New().String(),
		ParkingOrderID: orderID,
		Amount:         amount,
		Method:         method,
		Status:         domain.PaymentStatusSuccess,
	}
	if err := s.payments.SaveWithOrderActivation(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	if err := queue.PublishJSON(s.mq, queue.SubjectPaymentMade, payment); err != nil {
		s.log.Error("Failed to publish payment event",
			zap.String("payment_id", payment.ID), zap.Error(err))
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID),
		zap.String("order_id", orderID),
		zap.Float64("amount", amount),
	)
	return payment, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.FindAll(ctx)
}

func (s *Service) ListPaymentsForOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	return s.payments.FindByOrderID(ctx, orderID)
}
