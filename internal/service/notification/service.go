package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/adapter/queue"
	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// Mailer is the slice of the email service this package needs.
type Mailer interface {
	SendOrderExpiration(ctx context.Context, to, userName, plateNumber, expiredDate, amount string) error
}

// Service runs the daily expiration-notice sweep: for every active order
// near expiry it records a notification row, mirrors it to the message
// queue and emails the bike's owner.
type Service struct {
	orders        ports.ParkingOrderRepository
	bikes         ports.BikeRepository
	users         ports.UserRepository
	notifications ports.NotificationRepository
	mq            queue.MessageQueue
	mailer        Mailer
	leadTime      time.Duration
	log           *zap.Logger
}

func NewService(
	orders ports.ParkingOrderRepository,
	bikes ports.BikeRepository,
	users ports.UserRepository,
	notifications ports.NotificationRepository,
	mq queue.MessageQueue,
	mailer Mailer,
	leadTime time.Duration,
	log *zap.Logger,
) *Service {
	if leadTime <= 0 {
		leadTime = 72 * time.Hour
	}
	return &Service{
		orders:        orders,
		bikes:         bikes,
		users:         users,
		notifications: notifications,
		mq:            mq,
		mailer:        mailer,
		leadTime:      leadTime,
		log:           log,
	}
}

// SendExpirationNotifications notifies owners of orders expiring within the
// lead time. A failure on one order is logged and the sweep continues.
// Returns the number of notifications recorded.
func (s *Service) SendExpirationNotifications(ctx context.Context, now time.Time) (int, error) {
	expiring, err := s.orders.FindActiveExpiringBy(ctx, now.Add(s.leadTime))
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring orders: %w", err)
	}

	sent := 0
	for _, order := range expiring {
		if err := s.notifyOrder(ctx, &order); err != nil {
			s.log.Error("Expiration sweep: failed to notify",
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.log.Info("Expiration notification sweep finished",
		zap.Int("expiring", len(expiring)),
		zap.Int("notified", sent),
	)
	return sent, nil
}

func (s *Service) notifyOrder(ctx context.Context, order *domain.ParkingOrder) error {
	bike, err := s.bikes.FindByID(ctx, order.BikeID)
	if err != nil {
		return fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return fmt.Errorf("bike %s: %w", order.BikeID, domain.ErrNotFound)
	}

	user, err := s.users.FindByID(ctx, bike.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", bike.UserID, domain.ErrNotFound)
	}

	expiry := order.ExpiredDate.Format("2006-01-02")
	n := &domain.Notification{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		Message: fmt.Sprintf("Parking subscription for %s expires on %s", bike.PlateNumber, expiry),
		Type:    domain.NotificationTypeExpiration,
	}
	if err := s.notifications.Save(ctx, n); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	// Queue and email are best effort once the row is recorded.
	if err := queue.PublishJSON(s.mq, queue.SubjectOrderExpiring, n); err != nil {
		s.log.Warn("Failed to publish expiration event",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	amount := fmt.Sprintf("%.0f", order.Amount)
	if err := s.mailer.SendOrderExpiration(ctx, user.Email, user.FullName, bike.PlateNumber, expiry, amount); err != nil {
		s.log.Warn("Failed to send expiration email",
			zap.String("order_id", order.ID),
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	return nil
}

// ListForUser returns a user's recorded notifications.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notifications.FindByUserID(ctx, userID)
}
