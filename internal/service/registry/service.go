package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// Service manages the reference data behind the gate and billing flows.
type Service struct {
	bikes  ports.BikeRepository
	users  ports.UserRepository
	owners ports.OwnerRepository
	cards  ports.CardRepository
	types  ports.ParkingTypeRepository
	log    *zap.Logger
}

func NewService(
	bikes ports.BikeRepository,
	users ports.UserRepository,
	owners ports.OwnerRepository,
	cards ports.CardRepository,
	types ports.ParkingTypeRepository,
	log *zap.Logger,
) *Service {
	return &Service{
		bikes:  bikes,
		users:  users,
		owners: owners,
		cards:  cards,
		types:  types,
		log:    log,
	}
}

func (s *Service) CreateBike(ctx context.Context, plateNumber, userID string) (*domain.Bike, error) {
	if plateNumber == "" {
		return nil, fmt.Errorf("plate number is required: %w", domain.ErrValidation)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found: %w", userID, domain.ErrNotFound)
	}

	existing, err := s.bikes.FindByPlate(ctx, plateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check plate: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("plate %s is already registered: %w", plateNumber, domain.ErrConflict)
	}

	bike := &domain.Bike{
		ID:          uuid.New().String(),
		PlateNumber: plateNumber,
		UserID:      userID,
		Status:      domain.BikeStatusActive,
	}
	if err := s.bikes.Save(ctx, bike); err != nil {
		return nil, fmt.Errorf("failed to save bike: %w", err)
	}

	s.log.Info("Bike registered",
		zap.String("bike_id", bike.ID),
		zap.String("plate_number", plateNumber),
	)
	return bike, nil
}

func (s *Service) GetBike(ctx context.Context, id string) (*domain.Bike, error) {
	bike, err := s.bikes.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return nil, fmt.Errorf("bike %s not found: %w", id, domain.ErrNotFound)
	}
	return bike, nil
}

func (s *Service) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	return s.bikes.FindAll(ctx)
}

func (s *Service) ListBikesForUser(ctx context.Context, userID string) ([]domain.Bike, error) {
	return s.bikes.FindByUserID(ctx, userID)
}

func (s *Service) SetBikeStatus(ctx context.Context, id string, status domain.BikeStatus) (*domain.Bike, error) {
	if status != domain.BikeStatusActive && status != domain.BikeStatusInactive {
		return nil, fmt.Errorf("unknown bike status %q: %w", status, domain.ErrValidation)
	}

	bike, err := s.GetBike(ctx, id)
	if err != nil {
		return nil, err
	}

	bike.Status = status
	if err := s.bikes.Save(ctx, bike); err != nil {
		return nil, fmt.Errorf("failed to update bike: %w", err)
	}
	return bike, nil
}

func (s *Service) CreateSecurityAccount(ctx context.Context, fullName, email string) (*domain.User, error) {
	if fullName == "" || email == "" {
		return nil, fmt.Errorf("full name and email are required: %w", domain.ErrValidation)
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		FullName: fullName,
		Email:    email,
		Role:     domain.UserRoleSecurity,
		Status:   "active",
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.log.Info("Security account created", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *Service) SetUserStatus(ctx context.Context, id, status string) (*domain.User, error) {
	if status != "active" && status != "inactive" {
		return nil, fmt.Errorf("unknown user status %q: %w", status, domain.ErrValidation)
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Status = status
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *Service) RegisterOwner(ctx context.Context, req *ports.RegisterOwnerRequest) (*domain.Owner, error) {
	if req.FullName == "" || req.PlateNumber == "" {
		return nil, fmt.Errorf("full name and plate number are required: %w", domain.ErrValidation)
	}

	bike, err := s.bikes.FindByPlate(ctx, req.PlateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return nil, fmt.Errorf("bike with plate %s not found: %w", req.PlateNumber, domain.ErrNotFound)
	}

	owner := &domain.Owner{
		ID:           uuid.New().String(),
		BikeID:       bike.ID,
		FullName:     req.FullName,
		Gender:       req.Gender,
		Relationship: req.Relationship,
		FaceImage:    req.FaceImage,
		Active:       true,
	}
	if err := s.owners.Save(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to save owner: %w", err)
	}

	s.log.Info("Owner registered",
		zap.String("owner_id", owner.ID),
		zap.String("bike_id", bike.ID),
	)
	return owner, nil
}

func (s *Service) ListOwnersByPlate(ctx context.Context, plateNumber string) ([]domain.Owner, error) {
	bike, err := s.bikes.FindByPlate(ctx, plateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike == nil {
		return nil, fmt.Errorf("bike with plate %s not found: %w", plateNumber, domain.ErrNotFound)
	}
	return s.owners.FindActiveByBikeID(ctx, bike.ID)
}

func (s *Service) AssignCard(ctx context.Context, cardID, bikeID, parkingTypeID string) (*domain.Card, error) {
	if cardID == "" {
		return nil, fmt.Errorf("card id is required: %w", domain.ErrValidation)
	}

	bike, err := s.GetBike(ctx, bikeID)
	if err != nil {
		return nil, err
	}

	pt, err := s.types.FindByID(ctx, parkingTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parking type: %w", err)
	}
	if pt == nil {
		return nil, fmt.Errorf("parking type %s not found: %w", parkingTypeID, domain.ErrNotFound)
	}

	existing, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card: %w", err)
	}
	if existing != nil && existing.Status == domain.CardStatusActive && existing.BikeID != bike.ID {
		return nil, fmt.Errorf("card %s is assigned to another bike: %w", cardID, domain.ErrConflict)
	}

	now := time.Now()
	card := &domain.Card{
		ID:            cardID,
		BikeID:        bike.ID,
		ParkingTypeID: pt.ID,
		Status:        domain.CardStatusActive,
		StartDate:     &now,
	}
	if err := s.cards.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.log.Info("Card assigned",
		zap.String("card_id", cardID),
		zap.String("bike_id", bike.ID),
	)
	return card, nil
}

func (s *Service) RevokeCard(ctx context.Context, cardID string) (*domain.Card, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card: %w", err)
	}
	if card == nil {
		return nil, fmt.Errorf("card %s not found: %w", cardID, domain.ErrNotFound)
	}
	if card.Status == domain.CardStatusRevoked {
		return nil, fmt.Errorf("card %s is already revoked: %w", cardID, domain.ErrConflict)
	}

	card.Status = domain.CardStatusRevoked
	now := time.Now()
	card.ExpiredDate = &now
	if err := s.cards.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.log.Info("Card revoked", zap.String("card_id", cardID))
	return card, nil
}

func (s *Service) ListCardsByBike(ctx context.Context, bikeID string) ([]domain.Card, error) {
	return s.cards.FindByBikeID(ctx, bikeID)
}

func (s *Service) CreateParkingType(ctx context.Context, name string, fee float64, interval domain.BillingInterval) (*domain.ParkingType, error) {
	if err := validateParkingType(name, fee, interval); err != nil {
		return nil, err
	}

	existing, err := s.types.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check parking type name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("parking type %s already exists: %w", name, domain.ErrConflict)
	}

	pt := &domain.ParkingType{
		ID:       uuid.New().String(),
		Name:     name,
		Fee:      fee,
		Interval: interval,
		Active:   true,
	}
	if err := s.types.Save(ctx, pt); err != nil {
		return nil, fmt.Errorf("failed to save parking type: %w", err)
	}

	s.log.Info("Parking type created", zap.String("parking_type_id", pt.ID), zap.String("name", name))
	return pt, nil
}

func (s *Service) UpdateParkingType(ctx context.Context, id, name string, fee float64, interval domain.BillingInterval) (*domain.ParkingType, error) {
	if err := validateParkingType(name, fee, interval); err != nil {
		return nil, err
	}

	pt, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load parking type: %w", err)
	}
	if pt == nil {
		return nil, fmt.Errorf("parking type %s not found: %w", id, domain.ErrNotFound)
	}

	other, err := s.types.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check parking type name: %w", err)
	}
	if other != nil && other.ID != pt.ID {
		return nil, fmt.Errorf("parking type %s already exists: %w", name, domain.ErrConflict)
	}

	pt.Name = name
	pt.Fee = fee
	pt.Interval = interval
	if err := s.types.Save(ctx, pt); err != nil {
		return nil, fmt.Errorf("failed to update parking type: %w", err)
	}
	return pt, nil
}

func (s *Service) SetParkingTypeActive(ctx context.Context, id string, active bool) (*domain.ParkingType, error) {
	pt, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load parking type: %w", err)
	}
	if pt == nil {
		return nil, fmt.Errorf("parking type %s not found: %w", id, domain.ErrNotFound)
	}

	pt.Active = active
	if err := s.types.Save(ctx, pt); err != nil {
		return nil, fmt.Errorf("failed to update parking type: %w", err)
	}
	return pt, nil
}

func (s *Service) ListParkingTypes(ctx context.Context) ([]domain.ParkingType, error) {
	return s.types.FindAll(ctx)
}

func validateParkingType(name string, fee float64, interval domain.BillingInterval) error {
	if name == "" {
		return fmt.Errorf("parking type name is required: %w", domain.ErrValidation)
	}
	if fee < 0 {
		return fmt.Errorf("parking type fee cannot be negative: %w", domain.ErrValidation)
	}
	if !interval.Valid() {
		return fmt.Errorf("unknown billing interval %q: %w", interval, domain.ErrValidation)
	}
	return nil
}
