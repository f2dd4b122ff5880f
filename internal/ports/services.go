package ports

import (
	"context"
	"time"

	"github.com/seu-repo/smartparking/internal/domain"
)

// OrderService owns the parking-order state machine.
type OrderService interface {
	// PreviewOrder quotes the order a user would place, without persisting.
	PreviewOrder(ctx context.Context, bikeID, parkingTypeID string) (*domain.OrderQuote, error)

	// CreateOrder places a pending user-created order. Conflicts when the
	// bike already has a pending or active order.
	CreateOrder(ctx context.Context, bikeID, parkingTypeID string) (*domain.ParkingOrder, error)

	// CreateRenewalOrder creates the auto-renewal successor of a prior
	// order, computing the new term from the prior order's expiry date and
	// its tier interval. The prior order's dates are left untouched; the
	// daily sweep marks the prior row expired once the renewal exists.
	CreateRenewalOrder(ctx context.Context, priorOrderID string) (*domain.ParkingOrder, error)

	// CancelOrder moves a pending order to canceled. Conflicts when the
	// order is already canceled or already active.
	CancelOrder(ctx context.Context, orderID string) error

	GetOrder(ctx context.Context, id string) (*domain.ParkingOrder, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error)
	ListOrdersByBike(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)
	ListPendingOrdersByBike(ctx context.Context, bikeID string) ([]domain.ParkingOrder, error)

	// Scheduler entry points. The service owns no schedule; the daily job
	// runner calls these.
	CreateDueRenewals(ctx context.Context, now time.Time) (int, error)
	CancelOverdueOrders(ctx context.Context, now time.Time) (int, error)
}

// SessionService owns check-in/check-out visits.
type SessionService interface {
	CheckIn(ctx context.Context, req *CheckInRequest) (*domain.ParkingSession, error)

	// CheckOut closes a session with the fee and images supplied by the
	// staff terminal; the fee is not recomputed on this path.
	CheckOut(ctx context.Context, req *CheckOutRequest) (*domain.ParkingSession, error)

	// EvaluateGuest prices the open session behind a guest card and
	// resolves the rider against the check-in face image. Nothing is
	// persisted.
	EvaluateGuest(ctx context.Context, cardID, riderFaceImage string) (*domain.CheckoutEvaluation, error)

	// EvaluateOwner resolves a resident card to its bike's open session and
	// matches the rider against the registered owners. The fee is zero on
	// this path.
	EvaluateOwner(ctx context.Context, cardID, riderFaceImage string) (*domain.CheckoutEvaluation, error)

	GetSession(ctx context.Context, id string) (*domain.ParkingSession, error)
	ListSessions(ctx context.Context) ([]domain.ParkingSession, error)
	ListSessionsByPlate(ctx context.Context, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error)
	ListSessionsByPlateForUser(ctx context.Context, userID, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error)
}

// CheckInRequest carries the gate capture for a new visit.
type CheckInRequest struct {
	CardID          string
	PlateNumber     string
	FaceImage       string
	PlateImage      string
	ParkingTypeName string
	ApprovedBy      string
}

// CheckOutRequest carries the staff-confirmed close of a visit.
type CheckOutRequest struct {
	SessionID  string
	CardID     string
	FaceImage  string
	PlateImage string
	ParkingFee float64
}

// FeeService manages rate records and their audit trail.
type FeeService interface {
	CreateFee(ctx context.Context, name string, amount float64, description, approvedBy string) (*domain.Fee, error)
	UpdateFee(ctx context.Context, id, name string, amount float64, description, approvedBy string) (*domain.Fee, error)
	DeleteFee(ctx context.Context, id, approvedBy string) error
	GetFee(ctx context.Context, id string) (*domain.Fee, error)
	ListFees(ctx context.Context) ([]domain.Fee, error)
	ListFeesWithDeleted(ctx context.Context) ([]domain.Fee, error)
	ListResidentFees(ctx context.Context) ([]domain.Fee, error)
	GetFeeHistory(ctx context.Context, feeID string) ([]domain.FeeHistory, error)
	// GuestRates resolves the guest day/night rate pair used by checkout
	// evaluation, served from cache when fresh.
	GuestRates(ctx context.Context) (day, night float64, err error)
}

// PaymentService records settled payments.
type PaymentService interface {
	ProcessPayment(ctx context.Context, orderID, method string, amount float64) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsForOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}

// ReportService serves admin aggregates.
type ReportService interface {
	TotalCheckins(ctx context.Context, from, to time.Time) (int64, error)
	TotalCheckouts(ctx context.Context, from, to time.Time) (int64, error)
	TotalGuestIncome(ctx context.Context, from, to time.Time) (float64, error)
	GuestIncomeByDate(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error)
}

// NotificationService dispatches order-expiration notices.
type NotificationService interface {
	SendExpirationNotifications(ctx context.Context, now time.Time) (int, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

// RegisterOwnerRequest carries a new authorized rider for a registered bike.
type RegisterOwnerRequest struct {
	PlateNumber  string
	FullName     string
	Gender       string
	Relationship string
	FaceImage    string
}

// RegistryService manages the reference data the gate and billing flows
// run against: bikes, user accounts, owners, cards and parking types.
type RegistryService interface {
	CreateBike(ctx context.Context, plateNumber, userID string) (*domain.Bike, error)
	GetBike(ctx context.Context, id string) (*domain.Bike, error)
	ListBikes(ctx context.Context) ([]domain.Bike, error)
	ListBikesForUser(ctx context.Context, userID string) ([]domain.Bike, error)
	SetBikeStatus(ctx context.Context, id string, status domain.BikeStatus) (*domain.Bike, error)

	// CreateSecurityAccount registers a gate-staff identity. Resident
	// accounts arrive from the external auth layer.
	CreateSecurityAccount(ctx context.Context, fullName, email string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserStatus(ctx context.Context, id, status string) (*domain.User, error)

	RegisterOwner(ctx context.Context, req *RegisterOwnerRequest) (*domain.Owner, error)
	ListOwnersByPlate(ctx context.Context, plateNumber string) ([]domain.Owner, error)

	AssignCard(ctx context.Context, cardID, bikeID, parkingTypeID string) (*domain.Card, error)
	RevokeCard(ctx context.Context, cardID string) (*domain.Card, error)
	ListCardsByBike(ctx context.Context, bikeID string) ([]domain.Card, error)

	CreateParkingType(ctx context.Context, name string, fee float64, interval domain.BillingInterval) (*domain.ParkingType, error)
	UpdateParkingType(ctx context.Context, id, name string, fee float64, interval domain.BillingInterval) (*domain.ParkingType, error)
	SetParkingTypeActive(ctx context.Context, id string, active bool) (*domain.ParkingType, error)
	ListParkingTypes(ctx context.Context) ([]domain.ParkingType, error)
}
