package mocks

import (
	"context"
	"time"

	"github.com/seu-repo/smartparking/internal/domain"
)

// MockParkingTypeRepository is a mock implementation of ParkingTypeRepository
type MockParkingTypeRepository struct {
	SaveFunc       func(ctx context.Context, pt *domain.ParkingType) error
	FindByIDFunc   func(ctx context.Context, id string) (*domain.ParkingType, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.ParkingType, error)
	FindAllFunc    func(ctx context.Context) ([]domain.ParkingType, error)
}

func (m *MockParkingTypeRepository) Save(ctx context.Context, pt *domain.ParkingType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, pt)
	}
	return nil
}

func (m *MockParkingTypeRepository) FindByID(ctx context.Context, id string) (*domain.ParkingType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParkingTypeRepository) FindByName(ctx context.Context, name string) (*domain.ParkingType, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockParkingTypeRepository) FindAll(ctx context.Context) ([]domain.ParkingType, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.ParkingType{}, nil
}

// MockParkingOrderRepository is a mock implementation of ParkingOrderRepository
type MockParkingOrderRepository struct {
	SaveFunc                 func(ctx context.Context, order *domain.ParkingOrder) error
	UpdateFunc               func(ctx context.Context, order *domain.ParkingOrder) error
	FindByIDFunc             func(ctx context.Context, id string) (*domain.ParkingOrder, error)
	FindOpenByBikeIDFunc     func(ctx context.Context, bikeID string) (*domain.ParkingOrder, error)
	FindAllFunc              func(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error)
	FindByBikeIDFunc         func(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	FindPendingByBikeIDFunc  func(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	FindActiveExpiringByFunc func(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error)
	FindPendingOverdueFunc   func(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error)
}

func (m *MockParkingOrderRepository) Save(ctx context.Context, order *domain.ParkingOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, order)
	}
	return nil
}

func (m *MockParkingOrderRepository) Update(ctx context.Context, order *domain.ParkingOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, order)
	}
	return nil
}

func (m *MockParkingOrderRepository) FindByID(ctx context.Context, id string) (*domain.ParkingOrder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParkingOrderRepository) FindOpenByBikeID(ctx context.Context, bikeID string) (*domain.ParkingOrder, error) {
	if m.FindOpenByBikeIDFunc != nil {
		return m.FindOpenByBikeIDFunc(ctx, bikeID)
	}
	return nil, nil
}

func (m *MockParkingOrderRepository) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockParkingOrderRepository) FindByBikeID(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	if m.FindByBikeIDFunc != nil {
		return m.FindByBikeIDFunc(ctx, bikeID)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockParkingOrderRepository) FindPendingByBikeID(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error) {
	if m.FindPendingByBikeIDFunc != nil {
		return m.FindPendingByBikeIDFunc(ctx, bikeID)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockParkingOrderRepository) FindActiveExpiringBy(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
	if m.FindActiveExpiringByFunc != nil {
		return m.FindActiveExpiringByFunc(ctx, deadline)
	}
	return []domain.ParkingOrder{}, nil
}

func (m *MockParkingOrderRepository) FindPendingOverdue(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error) {
	if m.FindPendingOverdueFunc != nil {
		return m.FindPendingOverdueFunc(ctx, deadline)
	}
	return []domain.ParkingOrder{}, nil
}

// MockParkingSessionRepository is a mock implementation of ParkingSessionRepository
type MockParkingSessionRepository struct {
	SaveFunc               func(ctx context.Context, session *domain.ParkingSession) error
	UpdateFunc             func(ctx context.Context, session *domain.ParkingSession) error
	FindByIDFunc           func(ctx context.Context, id string) (*domain.ParkingSession, error)
	FindLatestByCardIDFunc func(ctx context.Context, cardID string) (*domain.ParkingSession, error)
	FindLatestByPlateFunc  func(ctx context.Context, plateNumber string) (*domain.ParkingSession, error)
	FindAllFunc            func(ctx context.Context) ([]domain.ParkingSession, error)
	FindByPlateAndRangeFunc func(ctx context.Context, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error)
	CountCheckinsFunc      func(ctx context.Context, from, to time.Time) (int64, error)
	CountCheckoutsFunc     func(ctx context.Context, from, to time.Time) (int64, error)
	SumGuestFeesFunc       func(ctx context.Context, from, to time.Time) (float64, error)
	SumGuestFeesByDateFunc func(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error)
}

func (m *MockParkingSessionRepository) Save(ctx context.Context, session *domain.ParkingSession) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	return nil
}

func (m *MockParkingSessionRepository) Update(ctx context.Context, session *domain.ParkingSession) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, session)
	}
	return nil
}

func (m *MockParkingSessionRepository) FindByID(ctx context.Context, id string) (*domain.ParkingSession, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParkingSessionRepository) FindLatestByCardID(ctx context.Context, cardID string) (*domain.ParkingSession, error) {
	if m.FindLatestByCardIDFunc != nil {
		return m.FindLatestByCardIDFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *MockParkingSessionRepository) FindLatestByPlate(ctx context.Context, plateNumber string) (*domain.ParkingSession, error) {
	if m.FindLatestByPlateFunc != nil {
		return m.FindLatestByPlateFunc(ctx, plateNumber)
	}
	return nil, nil
}

func (m *MockParkingSessionRepository) FindAll(ctx context.Context) ([]domain.ParkingSession, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.ParkingSession{}, nil
}

func (m *MockParkingSessionRepository) FindByPlateAndRange(ctx context.Context, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error) {
	if m.FindByPlateAndRangeFunc != nil {
		return m.FindByPlateAndRangeFunc(ctx, plateNumber, from, to)
	}
	return []domain.ParkingSession{}, nil
}

func (m *MockParkingSessionRepository) CountCheckins(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCheckinsFunc != nil {
		return m.CountCheckinsFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *MockParkingSessionRepository) CountCheckouts(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCheckoutsFunc != nil {
		return m.CountCheckoutsFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *MockParkingSessionRepository) SumGuestFees(ctx context.Context, from, to time.Time) (float64, error) {
	if m.SumGuestFeesFunc != nil {
		return m.SumGuestFeesFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *MockParkingSessionRepository) SumGuestFeesByDate(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error) {
	if m.SumGuestFeesByDateFunc != nil {
		return m.SumGuestFeesByDateFunc(ctx, from, to)
	}
	return []domain.DailyIncome{}, nil
}

// MockFeeRepository is a mock implementation of FeeRepository
type MockFeeRepository struct {
	SaveFunc               func(ctx context.Context, fee *domain.Fee) error
	UpdateFunc             func(ctx context.Context, fee *domain.Fee) error
	DeleteFunc             func(ctx context.Context, id string) error
	FindByIDFunc           func(ctx context.Context, id string) (*domain.Fee, error)
	FindByNameFunc         func(ctx context.Context, name string) (*domain.Fee, error)
	FindAllFunc            func(ctx context.Context) ([]domain.Fee, error)
	FindAllWithDeletedFunc func(ctx context.Context) ([]domain.Fee, error)
	SaveHistoryFunc        func(ctx context.Context, h *domain.FeeHistory) error
	FindHistoryByFeeIDFunc func(ctx context.Context, feeID string) ([]domain.FeeHistory, error)
}

func (m *MockFeeRepository) Save(ctx context.Context, fee *domain.Fee) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, fee)
	}
	return nil
}

func (m *MockFeeRepository) Update(ctx context.Context, fee *domain.Fee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, fee)
	}
	return nil
}

func (m *MockFeeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFeeRepository) FindByID(ctx context.Context, id string) (*domain.Fee, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFeeRepository) FindByName(ctx context.Context, name string) (*domain.Fee, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockFeeRepository) FindAll(ctx context.Context) ([]domain.Fee, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Fee{}, nil
}

func (m *MockFeeRepository) FindAllWithDeleted(ctx context.Context) ([]domain.Fee, error) {
	if m.FindAllWithDeletedFunc != nil {
		return m.FindAllWithDeletedFunc(ctx)
	}
	return []domain.Fee{}, nil
}

func (m *MockFeeRepository) SaveHistory(ctx context.Context, h *domain.FeeHistory) error {
	if m.SaveHistoryFunc != nil {
		return m.SaveHistoryFunc(ctx, h)
	}
	return nil
}

func (m *MockFeeRepository) FindHistoryByFeeID(ctx context.Context, feeID string) ([]domain.FeeHistory, error) {
	if m.FindHistoryByFeeIDFunc != nil {
		return m.FindHistoryByFeeIDFunc(ctx, feeID)
	}
	return []domain.FeeHistory{}, nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	SaveWithOrderActivationFunc func(ctx context.Context, payment *domain.Payment) error
	FindByIDFunc                func(ctx context.Context, id string) (*domain.Payment, error)
	FindAllFunc                 func(ctx context.Context) ([]domain.Payment, error)
	FindByOrderIDFunc           func(ctx context.Context, orderID string) ([]domain.Payment, error)
}

func (m *MockPaymentRepository) SaveWithOrderActivation(ctx context.Context, payment *domain.Payment) error {
	if m.SaveWithOrderActivationFunc != nil {
		return m.SaveWithOrderActivationFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Payment{}, nil
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.Payment, error) {
	if m.FindByOrderIDFunc != nil {
		return m.FindByOrderIDFunc(ctx, orderID)
	}
	return []domain.Payment{}, nil
}

// MockBikeRepository is a mock implementation of BikeRepository
type MockBikeRepository struct {
	SaveFunc               func(ctx context.Context, bike *domain.Bike) error
	FindByIDFunc           func(ctx context.Context, id string) (*domain.Bike, error)
	FindByPlateFunc        func(ctx context.Context, plateNumber string) (*domain.Bike, error)
	FindByPlateAndUserFunc func(ctx context.Context, plateNumber, userID string) (*domain.Bike, error)
	FindByUserIDFunc       func(ctx context.Context, userID string) ([]domain.Bike, error)
	FindAllFunc            func(ctx context.Context) ([]domain.Bike, error)
}

func (m *MockBikeRepository) Save(ctx context.Context, bike *domain.Bike) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, bike)
	}
	return nil
}

func (m *MockBikeRepository) FindByID(ctx context.Context, id string) (*domain.Bike, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBikeRepository) FindByPlate(ctx context.Context, plateNumber string) (*domain.Bike, error) {
	if m.FindByPlateFunc != nil {
		return m.FindByPlateFunc(ctx, plateNumber)
	}
	return nil, nil
}

func (m *MockBikeRepository) FindByPlateAndUser(ctx context.Context, plateNumber, userID string) (*domain.Bike, error) {
	if m.FindByPlateAndUserFunc != nil {
		return m.FindByPlateAndUserFunc(ctx, plateNumber, userID)
	}
	return nil, nil
}

func (m *MockBikeRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Bike, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.Bike{}, nil
}

func (m *MockBikeRepository) FindAll(ctx context.Context) ([]domain.Bike, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Bike{}, nil
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	SaveFunc         func(ctx context.Context, card *domain.Card) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Card, error)
	FindByBikeIDFunc func(ctx context.Context, bikeID string) ([]domain.Card, error)
}

func (m *MockCardRepository) Save(ctx context.Context, card *domain.Card) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCardRepository) FindByBikeID(ctx context.Context, bikeID string) ([]domain.Card, error) {
	if m.FindByBikeIDFunc != nil {
		return m.FindByBikeIDFunc(ctx, bikeID)
	}
	return []domain.Card{}, nil
}

// MockOwnerRepository is a mock implementation of OwnerRepository
type MockOwnerRepository struct {
	SaveFunc               func(ctx context.Context, owner *domain.Owner) error
	FindActiveByBikeIDFunc func(ctx context.Context, bikeID string) ([]domain.Owner, error)
}

func (m *MockOwnerRepository) Save(ctx context.Context, owner *domain.Owner) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, owner)
	}
	return nil
}

func (m *MockOwnerRepository) FindActiveByBikeID(ctx context.Context, bikeID string) ([]domain.Owner, error) {
	if m.FindActiveByBikeIDFunc != nil {
		return m.FindActiveByBikeIDFunc(ctx, bikeID)
	}
	return []domain.Owner{}, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc     func(ctx context.Context, user *domain.User) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.User, error)
	FindAllFunc  func(ctx context.Context) ([]domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.User{}, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	SaveFunc         func(ctx context.Context, n *domain.Notification) error
	FindByUserIDFunc func(ctx context.Context, userID string) ([]domain.Notification, error)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *domain.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *MockNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.Notification{}, nil
}
