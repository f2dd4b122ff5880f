package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/observability/telemetry"
	"github.com/seu-repo/smartparking/internal/ports"
	"github.com/seu-repo/smartparking/internal/service/billing"
)

// Service owns parking visits: check-in, check-out and the two checkout
// evaluation flows the gate terminal calls.
type Service struct {
	sessions ports.ParkingSessionRepository
	types    ports.ParkingTypeRepository
	cards    ports.CardRepository
	owners   ports.OwnerRepository
	bikes    ports.BikeRepository
	fees     ports.FeeService
	faces    ports.FaceComparator
	log      *zap.Logger
}

func NewService(
	sessions ports.ParkingSessionRepository,
	types ports.ParkingTypeRepository,
	cards ports.CardRepository,
	owners ports.OwnerRepository,
	bikes ports.BikeRepository,
	fees ports.FeeService,
	faces ports.FaceComparator,
	log *zap.Logger,
) *Service {
	return &Service{
		sessions: sessions,
		types:    types,
		cards:    cards,
		owners:   owners,
		bikes:    bikes,
		fees:     fees,
		faces:    faces,
		log:      log,
	}
}

// CheckIn opens a new visit from the gate capture.
func (s *Service) CheckIn(ctx context.Context, req *ports.CheckInRequest) (*domain.ParkingSession, error) {
	if req.CardID == "" || req.PlateNumber == "" {
		return nil, fmt.Errorf("card id and plate number are required: %w", domain.ErrValidation)
	}

	pt, err := s.types.FindByName(ctx, req.ParkingTypeName)
	if err != nil {
		return nil, fmt.Errorf("failed to load parking type: %w", err)
	}
	if pt == nil {
		return nil, fmt.Errorf("parking type %q: %w", req.ParkingTypeName, domain.ErrNotFound)
	}

	session := &domain.ParkingSession{
		ID:                uuid.New().String(),
		CheckinCardID:     req.CardID,
		CheckinTime:       time.Now(),
		CheckinFaceImage:  req.FaceImage,
		CheckinPlateImage: req.PlateImage,
		PlateNumber:       req.PlateNumber,
		ApprovedBy:        req.ApprovedBy,
		ParkingTypeID:     pt.ID,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	telemetry.CheckinsTotal.Inc()
	telemetry.OpenParkingSessions.Inc()

	s.log.Info("Vehicle checked in",
		zap.String("session_id", session.ID),
		zap.String("plate_number", req.PlateNumber),
		zap.String("card_id", req.CardID),
	)
	return session, nil
}

// CheckOut closes a visit with the fee and images confirmed on the staff
// terminal. The fee is taken as supplied, not recomputed.
func (s *Service) CheckOut(ctx context.Context, req *ports.CheckOutRequest) (*domain.ParkingSession, error) {
	session, err := s.sessions.FindByID(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", req.SessionID, domain.ErrNotFound)
	}
	if !session.IsOpen() {
		return nil, fmt.Errorf("session %s is already closed: %w", req.SessionID, domain.ErrConflict)
	}

	now := time.Now()
	session.CheckoutCardID = req.CardID
	session.CheckoutTime = &now
	session.CheckoutFaceImage = req.FaceImage
	session.CheckoutPlateImage = req.PlateImage
	session.ParkingFee = req.ParkingFee

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	telemetry.CheckoutsTotal.Inc()
	telemetry.OpenParkingSessions.Dec()
	if req.ParkingFee > 0 {
		telemetry.GuestRevenueTotal.Add(req.ParkingFee)
	}

	s.log.Info("Vehicle checked out",
		zap.String("session_id", session.ID),
		zap.String("plate_number", session.PlateNumber),
		zap.Float64("parking_fee", req.ParkingFee),
	)
	return session, nil
}

// EvaluateGuest prices the open session behind a guest card and resolves
// the rider against the check-in face image. Nothing is persisted; the
// staff terminal confirms with CheckOut.
func (s *Service) EvaluateGuest(ctx context.Context, cardID, riderFaceImage string) (*domain.CheckoutEvaluation, error) {
	session, err := s.sessions.FindLatestByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("no session for card %s: %w", cardID, domain.ErrNotFound)
	}
	if !session.IsOpen() {
		return nil, fmt.Errorf("latest session for card %s is already closed: %w", cardID, domain.ErrNotFound)
	}

	dayRate, nightRate, err := s.fees.GuestRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load guest rates: %w", err)
	}
	fee := billing.CalculateParkingFee(session.CheckinTime, time.Now(), dayRate, nightRate)

	rider := domain.RiderUnknown
	match, err := s.faces.Compare(ctx, riderFaceImage, session.CheckinFaceImage)
	if err != nil {
		return nil, fmt.Errorf("face comparison failed: %w", err)
	}
	if match {
		rider = domain.RiderGuest
		telemetry.FaceComparisonsTotal.WithLabelValues("match").Inc()
	} else {
		telemetry.FaceComparisonsTotal.WithLabelValues("no_match").Inc()
	}

	return &domain.CheckoutEvaluation{
		Session:           session,
		ParkingFee:        fee,
		DetectedRiderName: rider,
	}, nil
}

// EvaluateOwner resolves a resident card to its bike's open session and
// matches the rider against the registered owners in listing order. The
// fee is zero on this path.
func (s *Service) EvaluateOwner(ctx context.Context, cardID, riderFaceImage string) (*domain.CheckoutEvaluation, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card: %w", err)
	}
	if card == nil || card.BikeID == "" {
		return nil, fmt.Errorf("no bike registered for card %s: %w", cardID, domain.ErrNotFound)
	}

	bike, err := s.bikes.FindByID(ctx, card.BikeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return nil, fmt.Errorf("bike %s: %w", card.BikeID, domain.ErrNotFound)
	}

	owners, err := s.owners.FindActiveByBikeID(ctx, bike.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owners: %w", err)
	}
	if len(owners) == 0 {
		return nil, fmt.Errorf("no active owners for bike %s: %w", bike.ID, domain.ErrNotFound)
	}

	session, err := s.sessions.FindLatestByPlate(ctx, bike.PlateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || !session.IsOpen() {
		return nil, fmt.Errorf("no open session for plate %s: %w", bike.PlateNumber, domain.ErrNotFound)
	}

	rider := domain.RiderUnknown
	for _, owner := range owners {
		match, err := s.faces.Compare(ctx, riderFaceImage, owner.FaceImage)
		if err != nil {
			return nil, fmt.Errorf("face comparison failed: %w", err)
		}
		if match {
			rider = owner.FullName
			telemetry.FaceComparisonsTotal.WithLabelValues("match").Inc()
			break
		}
		telemetry.FaceComparisonsTotal.WithLabelValues("no_match").Inc()
	}

	// Registered-owner visits are covered by the parking order, not metered.
	return &domain.CheckoutEvaluation{
		Session:           session,
		ParkingFee:        0,
		DetectedRiderName: rider,
	}, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*domain.ParkingSession, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context) ([]domain.ParkingSession, error) {
	return s.sessions.FindAll(ctx)
}

func (s *Service) ListSessionsByPlate(ctx context.Context, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("a check-in time range is required: %w", domain.ErrValidation)
	}
	return s.sessions.FindByPlateAndRange(ctx, plateNumber, from, to)
}

// ListSessionsByPlateForUser restricts the plate history lookup to bikes
// the requesting user owns.
func (s *Service) ListSessionsByPlateForUser(ctx context.Context, userID, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error) {
	bike, err := s.bikes.FindByPlateAndUser(ctx, plateNumber, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return nil, fmt.Errorf("no bike %s registered to user: %w", plateNumber, domain.ErrNotFound)
	}
	return s.ListSessionsByPlate(ctx, plateNumber, from, to)
}
