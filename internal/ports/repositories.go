package ports

import (
	"context"
	"time"

	"github.com/seu-repo/smartparking/internal/domain"
)

type ParkingTypeRepository interface {
	Save(ctx context.Context, pt *domain.ParkingType) error
	FindByID(ctx context.Context, id string) (*domain.ParkingType, error)
	FindByName(ctx context.Context, name string) (*domain.ParkingType, error)
	FindAll(ctx context.Context) ([]domain.ParkingType, error)
}

type ParkingOrderRepository interface {
	Save(ctx context.Context, order *domain.ParkingOrder) error
	Update(ctx context.Context, order *domain.ParkingOrder) error
	FindByID(ctx context.Context, id string) (*domain.ParkingOrder, error)
	// FindOpenByBikeID returns the pending or active order for a bike, or
	// nil when the bike has none.
	FindOpenByBikeID(ctx context.Context, bikeID string) (*domain.ParkingOrder, error)
	FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error)
	FindByBikeID(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	FindPendingByBikeID(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	// FindActiveExpiringBy returns active orders whose expiry date is at or
	// before the given instant (renewal and notification sweeps).
	FindActiveExpiringBy(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error)
	// FindPendingOverdue returns pending orders left unpaid past their
	// expiry date.
	FindPendingOverdue(ctx context.Context, deadline time.Time) ([]domain.ParkingOrder, error)
}

type ParkingSessionRepository interface {
	Save(ctx context.Context, session *domain.ParkingSession) error
	Update(ctx context.Context, session *domain.ParkingSession) error
	FindByID(ctx context.Context, id string) (*domain.ParkingSession, error)
	// FindLatestByCardID returns the most recent session for a check-in
	// card ordered by check-in time, open or not, or nil when none exists.
	FindLatestByCardID(ctx context.Context, cardID string) (*domain.ParkingSession, error)
	// FindLatestByPlate is the plate-keyed equivalent of FindLatestByCardID.
	FindLatestByPlate(ctx context.Context, plateNumber string) (*domain.ParkingSession, error)
	// FindAll lists every session with the image columns omitted.
	FindAll(ctx context.Context) ([]domain.ParkingSession, error)
	FindByPlateAndRange(ctx context.Context, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error)
	CountCheckins(ctx context.Context, from, to time.Time) (int64, error)
	CountCheckouts(ctx context.Context, from, to time.Time) (int64, error)
	SumGuestFees(ctx context.Context, from, to time.Time) (float64, error)
	SumGuestFeesByDate(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error)
}

type FeeRepository interface {
	Save(ctx context.Context, fee *domain.Fee) error
	Update(ctx context.Context, fee *domain.Fee) error
	// Delete soft-deletes; the row stays reachable via FindAllWithDeleted.
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Fee, error)
	FindByName(ctx context.Context, name string) (*domain.Fee, error)
	FindAll(ctx context.Context) ([]domain.Fee, error)
	FindAllWithDeleted(ctx context.Context) ([]domain.Fee, error)
	SaveHistory(ctx context.Context, h *domain.FeeHistory) error
	FindHistoryByFeeID(ctx context.Context, feeID string) ([]domain.FeeHistory, error)
}

type PaymentRepository interface {
	// SaveWithOrderActivation writes the payment row and flips the order to
	// active as one transaction; neither survives a failure of the other.
	SaveWithOrderActivation(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	FindAll(ctx context.Context) ([]domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) ([]domain.Payment, error)
}

type BikeRepository interface {
	Save(ctx context.Context, bike *domain.Bike) error
	FindByID(ctx context.Context, id string) (*domain.Bike, error)
	FindByPlate(ctx context.Context, plateNumber string) (*domain.Bike, error)
	FindByPlateAndUser(ctx context.Context, plateNumber, userID string) (*domain.Bike, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Bike, error)
	FindAll(ctx context.Context) ([]domain.Bike, error)
}

type CardRepository interface {
	Save(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	FindByBikeID(ctx context.Context, bikeID string) ([]domain.Card, error)
}

type OwnerRepository interface {
	Save(ctx context.Context, owner *domain.Owner) error
	// FindActiveByBikeID returns active owners in stable listing order.
	FindActiveByBikeID(ctx context.Context, bikeID string) ([]domain.Owner, error)
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

type NotificationRepository interface {
	Save(ctx context.Context, n *domain.Notification) error
	FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error)
}
