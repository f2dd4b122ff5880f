package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendOrderExpiration(ctx context.Context, to, userName, plateNumber, expiredDate, amount string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func expiringOrders(n int) []domain.ParkingOrder {
	orders := make([]domain.ParkingOrder, n)
	for i := range orders {
		orders[i] = domain.ParkingOrder{
			ID:          "order-" + string(rune('a'+i)),
			BikeID:      "bike-" + string(rune('a'+i)),
			Status:      domain.OrderStatusActive,
			ExpiredDate: time.Now().AddDate(0, 0, 2),
			Amount:      150000,
		}
	}
	return orders
}

func TestSendExpirationNotifications_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var savedNotifications []*domain.Notification

	orders := &mocks.MockParkingOrderRepository{
		FindActiveExpiringByFunc: func(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
			return expiringOrders(2), nil
		},
	}
	bikes := &mocks.MockBikeRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bike, error) {
			return &domain.Bike{ID: id, PlateNumber: "59X1-12345", UserID: "user-1"}, nil
		},
	}
	users := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, FullName: "Nguyen Van A", Email: "a@example.com"}, nil
		},
	}
	notifications := &mocks.MockNotificationRepository{
		SaveFunc: func(ctx context.Context, n *domain.Notification) error {
			savedNotifications = append(savedNotifications, n)
			return nil
		},
	}
	mq := mocks.NewMockMessageQueue()
	mailer := &fakeMailer{}

	service := NewService(orders, bikes, users, notifications, mq, mailer, 72*time.Hour, newTestLogger())

	// Act
	sent, err := service.SendExpirationNotifications(ctx, time.Now())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sent != 2 {
		t.Errorf("expected 2 notifications, got %d", sent)
	}
	if len(savedNotifications) != 2 {
		t.Errorf("expected 2 rows saved, got %d", len(savedNotifications))
	}
	if savedNotifications[0].Type != domain.NotificationTypeExpiration {
		t.Errorf("expected expiration type, got %s", savedNotifications[0].Type)
	}
	if len(mq.GetPublishedMessages("parking.order.expiring")) != 2 {
		t.Error("expected 2 queue events")
	}
	if len(mailer.sent) != 2 {
		t.Errorf("expected 2 emails, got %d", len(mailer.sent))
	}
}

func TestSendExpirationNotifications_ContinuesPastFailures(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orders := &mocks.MockParkingOrderRepository{
		FindActiveExpiringByFunc: func(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
			return expiringOrders(2), nil
		},
	}
	bikes := &mocks.MockBikeRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bike, error) {
			// First bike lookup fails, second succeeds.
			if id == "bike-a" {
				return nil, errors.New("db down")
			}
			return &domain.Bike{ID: id, PlateNumber: "59X1-67890", UserID: "user-2"}, nil
		},
	}
	users := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, FullName: "Tran Thi B", Email: "b@example.com"}, nil
		},
	}
	service := NewService(orders, bikes, users, &mocks.MockNotificationRepository{}, mocks.NewMockMessageQueue(), &fakeMailer{}, 0, newTestLogger())

	// Act
	sent, err := service.SendExpirationNotifications(ctx, time.Now())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sent != 1 {
		t.Errorf("expected 1 notification despite failure, got %d", sent)
	}
}

func TestSendExpirationNotifications_EmailFailureStillCounts(t *testing.T) {
	// Arrange: the notification row is the source of truth; email is best
	// effort on top of it.
	ctx := context.Background()
	orders := &mocks.MockParkingOrderRepository{
		FindActiveExpiringByFunc: func(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
			return expiringOrders(1), nil
		},
	}
	bikes := &mocks.MockBikeRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bike, error) {
			return &domain.Bike{ID: id, PlateNumber: "59X1-12345", UserID: "user-1"}, nil
		},
	}
	users := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "a@example.com"}, nil
		},
	}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	service := NewService(orders, bikes, users, &mocks.MockNotificationRepository{}, mocks.NewMockMessageQueue(), mailer, 0, newTestLogger())

	// Act
	sent, err := service.SendExpirationNotifications(ctx, time.Now())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sent != 1 {
		t.Errorf("expected 1 notification, got %d", sent)
	}
}

func TestListForUser_ReturnsStoredNotifications(t *testing.T) {
	// Arrange
	ctx := context.Background()
	notifications := &mocks.MockNotificationRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			if userID != "user-1" {
				t.Errorf("expected lookup for user-1, got %s", userID)
			}
			return []domain.Notification{
				{ID: "n-1", UserID: userID, Type: domain.NotificationTypeExpiration},
			}, nil
		},
	}
	service := NewService(
		&mocks.MockParkingOrderRepository{},
		&mocks.MockBikeRepository{},
		&mocks.MockUserRepository{},
		notifications,
		mocks.NewMockMessageQueue(),
		&fakeMailer{},
		72*time.Hour,
		newTestLogger(),
	)

	// Act
	list, err := service.ListForUser(ctx, "user-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 || list[0].ID != "n-1" {
		t.Errorf("expected the stored notification, got %v", list)
	}
}
