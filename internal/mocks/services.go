package mocks

import (
	"context"
	"time"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// MockOrderService is a mock implementation of the OrderService interface
type MockOrderService struct {
	PreviewOrderFunc            func(ctx context.Context, bikeID, parkingTypeID string) (*domain.OrderQuote, error)
	CreateOrderFunc             func(ctx context.Context, bikeID, parkingTypeID string) (*domain.ParkingOrder, error)
	CreateRenewalOrderFunc      func(ctx context.Context, priorOrderID string) (*domain.ParkingOrder, error)
	CancelOrderFunc             func(ctx context.Context, orderID string) error
	GetOrderFunc                func(ctx context.Context, id string) (*domain.ParkingOrder, error)
	ListOrdersFunc              func(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error)
	ListOrdersByBikeFunc        func(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	ListPendingOrdersByBikeFunc func(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	CreateDueRenewalsFunc       func(ctx context.Context, now time.Time) (int, error)
	CancelOverdueOrdersFunc     func(ctx context.Context, now time.Time) (int, error)
}

func (m *MockOrderService) PreviewOrder(ctx context.Context, bikeID, parkingTypeID string) (*domain.OrderQuote, error) {
	if m.PreviewOrderFunc != nil {
		return m.PreviewOrderFunc(ctx, bikeID, parkingTypeID)
	}
	return nil, nil
}

func (m *MockOrderService) CreateOrder(ctx context.Context, bikeID, parkingTypeID string) (*domain.ParkingOrder, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, bikeID, parkingTypeID)
	}
	return nil, nil
}

func (m *MockOrderService) CreateRenewalOrder(ctx context.Context, priorOrderID string) (*domain.ParkingOrder, error) {
	if m.CreateRenewalOrderFunc != nil {
		return m.CreateRenewalOrderFunc(ctx, priorOrderID)
	}
	return nil, nil
}

func (m *MockOrderService) CancelOrder(ctx context.Context, orderID string) error {
	if m.CancelOrderFunc != nil {
		return m.CancelOrderFunc(ctx, orderID)
	}
	return nil
}

func (m *MockOrderService) GetOrder(ctx context.Context, id string) (*domain.ParkingOrder, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, filter)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockOrderService) ListOrdersByBike(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	if m.ListOrdersByBikeFunc != nil {
		return m.ListOrdersByBikeFunc(ctx, bikeID)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockOrderService) ListPendingOrdersByBike(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	if m.ListPendingOrdersByBikeFunc != nil {
		return m.ListPendingOrdersByBikeFunc(ctx, bikeID)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockOrderService) CreateDueRenewals(ctx context.Context, now time.Time) (int, error) {
	if m.CreateDueRenewalsFunc != nil {
		return m.CreateDueRenewalsFunc(ctx, now)
	}
	return 0, nil
}

func (m *MockOrderService) CancelOverdueOrders(ctx context.Context, now time.Time) (int, error) {
	if m.CancelOverdueOrdersFunc != nil {
		return m.CancelOverdueOrdersFunc(ctx, now)
	}
	return 0, nil
}

// MockNotificationService is a mock implementation of the NotificationService interface
type MockNotificationService struct {
	SendExpirationNotificationsFunc func(ctx context.Context, now time.Time) (int, error)
	ListForUserFunc                 func(ctx context.Context, userID string) ([]domain.Notification, error)
}

func (m *MockNotificationService) SendExpirationNotifications(ctx context.Context, now time.Time) (int, error) {
	if m.SendExpirationNotificationsFunc != nil {
		return m.SendExpirationNotificationsFunc(ctx, now)
	}
	return 0, nil
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return []domain.Notification{}, nil
}

var (
	_ ports.OrderService        = (*MockOrderService)(nil)
	_ ports.NotificationService = (*MockNotificationService)(nil)
)
