package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/adapter/queue"
	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/observability/telemetry"
	"github.com/seu-repo/smartparking/internal/ports"
)

// Service owns the parking-order state machine: creation, renewal,
// cancellation and the daily sweeps the scheduler triggers.
type Service struct {
	orders ports.ParkingOrderRepository
	types  ports.ParkingTypeRepository
	bikes  ports.BikeRepository
	mq     queue.MessageQueue
	log    *zap.Logger
}

func NewService(
	orders ports.ParkingOrderRepository,
	types ports.ParkingTypeRepository,
	bikes ports.BikeRepository,
	mq queue.MessageQueue,
	log *zap.Logger,
) *Service {
	return &Service{
		orders: orders,
		types:  types,
		bikes:  bikes,
		mq:     mq,
		log:    log,
	}
}

// PreviewOrder quotes the order a user would place without persisting it.
func (s *Service) PreviewOrder(ctx context.Context, bikeID, parkingTypeID string) (*domain.OrderQuote, error) {
	bike, pt, err := s.resolveBikeAndType(ctx, bikeID, parkingTypeID)
	if err != nil {
		return nil, err
	}

	return &domain.OrderQuote{
		BikeID:          bike.ID,
		ParkingTypeID:   pt.ID,
		PlateNumber:     bike.PlateNumber,
		ParkingTypeName: pt.Name,
		ExpiredDate:     pt.Interval.NextExpiry(time.Now()),
		Amount:          pt.Fee,
	}, nil
}

// CreateOrder places a pending user-created order for a bike.
func (s *Service) CreateOrder(ctx context.Context, bikeID, parkingTypeID string) (*domain.ParkingOrder, error) {
	bike, pt, err := s.resolveBikeAndType(ctx, bikeID, parkingTypeID)
	if err != nil {
		return nil, err
	}

	existing, err := s.orders.FindOpenByBikeID(ctx, bike.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open orders: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("bike %s already has a %s order: %w", bike.ID, existing.Status, domain.ErrConflict)
	}

	order := &domain.ParkingOrder{
		ID:            uuid.New().String(),
		BikeID:        bike.ID,
		ParkingTypeID: pt.ID,
		Status:        domain.OrderStatusPending,
		Origin:        domain.OrderOriginUser,
		ExpiredDate:   pt.Interval.NextExpiry(time.Now()),
		Amount:        pt.Fee,
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Info("Parking order created",
		zap.String("order_id", order.ID),
		zap.String("bike_id", bike.ID),
		zap.String("parking_type", pt.Name),
	)
	return order, nil
}

// CreateRenewalOrder creates the auto-renewal successor of a prior order.
// The new expiry advances the prior order's own expiry date by the tier
// interval; the prior row is never touched.
func (s *Service) CreateRenewalOrder(ctx context.Context, priorOrderID string) (*domain.ParkingOrder, error) {
	prior, err := s.orders.FindByID(ctx, priorOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior order: %w", err)
	}
	if prior == nil {
		return nil, fmt.Errorf("order %s: %w", priorOrderID, domain.ErrNotFound)
	}

	pt, err := s.types.FindByID(ctx, prior.ParkingTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parking type: %w", err)
	}
	if pt == nil {
		return nil, fmt.Errorf("parking type %s: %w", prior.ParkingTypeID, domain.ErrNotFound)
	}

	renewal := &domain.ParkingOrder{
		ID:            uuid.New().String(),
		BikeID:        prior.BikeID,
		ParkingTypeID: pt.ID,
		Status:        domain.OrderStatusPending,
		Origin:        domain.OrderOriginAutoRenewal,
		ExpiredDate:   pt.Interval.NextExpiry(prior.ExpiredDate),
		Amount:        pt.Fee,
	}
	if err := s.orders.Save(ctx, renewal); err != nil {
		return nil, fmt.Errorf("failed to save renewal order: %w", err)
	}

	telemetry.RenewalOrdersCreated.Inc()
	s.publishEvent(queue.SubjectOrderRenewed, renewal)

	s.log.Info("Renewal order created",
		zap.String("order_id", renewal.ID),
		zap.String("prior_order_id", prior.ID),
		zap.Time("expired_date", renewal.ExpiredDate),
	)
	return renewal, nil
}

// CancelOrder moves a pending order to canceled.
func (s *Service) CancelOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	if order.Status == domain.OrderStatusCanceled {
		return fmt.Errorf("order %s is already canceled: %w", orderID, domain.ErrConflict)
	}
	if order.Status == domain.OrderStatusActive {
		return fmt.Errorf("order %s is active and cannot be canceled: %w", orderID, domain.ErrConflict)
	}

	order.Status = domain.OrderStatusCanceled
	if err := s.orders.Update(ctx, order); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	s.publishEvent(queue.SubjectOrderCanceled, order)
	s.log.Info("Parking order canceled", zap.String("order_id", orderID))
	return nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.ParkingOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error) {
	return s.orders.FindAll(ctx, filter)
}

func (s *Service) ListOrdersByBike(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	return s.orders.FindByBikeID(ctx, bikeID)
}

func (s *Service) ListPendingOrdersByBike(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	return s.orders.FindPendingByBikeID(ctx, bikeID)
}

// CreateDueRenewals generates renewal orders for every active order expired
// at or before now. A failure on one order is logged and does not stop the
// sweep. Returns the number of renewals created.
func (s *Service) CreateDueRenewals(ctx context.Context, now time.Time) (int, error) {
	due, err := s.orders.FindActiveExpiringBy(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring orders: %w", err)
	}

	created := 0
	for _, prior := range due {
		// Skip bikes that already renewed or placed a new order.
		open, err := s.orders.FindOpenByBikeID(ctx, prior.BikeID)
		if err != nil {
			s.log.Error("Renewal sweep: open-order check failed",
				zap.String("order_id", prior.ID), zap.Error(err))
			continue
		}
		if open != nil && open.ID != prior.ID {
			continue
		}

		if _, err := s.CreateRenewalOrder(ctx, prior.ID); err != nil {
			s.log.Error("Renewal sweep: failed to create renewal",
				zap.String("order_id", prior.ID), zap.Error(err))
			continue
		}

		// The prior order has served its term.
		prior.Status = domain.OrderStatusExpired
		if err := s.orders.Update(ctx, &prior); err != nil {
			s.log.Error("Renewal sweep: failed to expire prior order",
				zap.String("order_id", prior.ID), zap.Error(err))
			continue
		}
		created++
	}

	s.log.Info("Renewal sweep finished",
		zap.Int("due", len(due)),
		zap.Int("created", created),
	)
	return created, nil
}

// CancelOverdueOrders cancels pending orders left unpaid past their expiry
// date. Returns the number of orders canceled.
func (s *Service) CancelOverdueOrders(ctx context.Context, now time.Time) (int, error) {
	overdue, err := s.orders.FindPendingOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue orders: %w", err)
	}

	canceled := 0
	for _, order := range overdue {
		order.Status = domain.OrderStatusCanceled
		if err := s.orders.Update(ctx, &order); err != nil {
			s.log.Error("Overdue sweep: failed to cancel order",
				zap.String("order_id", order.ID), zap.Error(err))
			continue
		}
		s.publishEvent(queue.SubjectOrderCanceled, &order)
		canceled++
	}

	s.log.Info("Overdue sweep finished",
		zap.Int("overdue", len(overdue)),
		zap.Int("canceled", canceled),
	)
	return canceled, nil
}

func (s *Service) resolveBikeAndType(ctx context.Context, bikeID, parkingTypeID string) (*domain.Bike, *domain.ParkingType, error) {
	bike, err := s.bikes.FindByID(ctx, bikeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return nil, nil, fmt.Errorf("bike %s: %w", bikeID, domain.ErrNotFound)
	}

	pt, err := s.types.FindByID(ctx, parkingTypeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load parking type: %w", err)
	}
	if pt == nil {
		return nil, nil, fmt.Errorf("parking type %s: %w", parkingTypeID, domain.ErrNotFound)
	}
	if !pt.Active {
		return nil, nil, fmt.Errorf("parking type %s is inactive: %w", pt.Name, domain.ErrValidation)
	}

	return bike, pt, nil
}

// publishEvent mirrors an order transition to the message queue. Queue
// failures are logged; the state change already committed.
func (s *Service) publishEvent(subject string, order *domain.ParkingOrder) {
	if err := queue.PublishJSON(s.mq, subject, order); err != nil {
		s.log.Error("Failed to publish order event",
			zap.String("subject", subject),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
}
