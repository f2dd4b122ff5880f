package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// sessionListColumns omits the base64 image columns; list endpoints would
// otherwise ship megabytes per row.
var sessionListColumns = []string{
	"id", "checkin_card_id", "checkin_time",
	"checkout_card_id", "checkout_time",
	"plate_number", "parking_fee", "approved_by", "parking_type_id",
	"created_at", "updated_at",
}

type ParkingSessionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewParkingSessionRepository(db *gorm.DB, log *zap.Logger) ports.ParkingSessionRepository {
	return &ParkingSessionRepository{
		db:  db,
		log: log,
	}
}

func (r *ParkingSessionRepository) Save(ctx context.Context, session *domain.ParkingSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *ParkingSessionRepository) Update(ctx context.Context, session *domain.ParkingSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *ParkingSessionRepository) FindByID(ctx context.Context, id string) (*domain.ParkingSession, error) {
	var session domain.ParkingSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *ParkingSessionRepository) FindLatestByCardID(ctx context.Context, cardID string) (*domain.ParkingSession, error) {
	var session domain.ParkingSession
	err := r.db.WithContext(ctx).
		Where("checkin_card_id = ?", cardID).
		Order("checkin_time desc").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *ParkingSessionRepository) FindLatestByPlate(ctx context.Context, plateNumber string) (*domain.ParkingSession, error) {
	var session domain.ParkingSession
	err := r.db.WithContext(ctx).
		Where("plate_number = ?", plateNumber).
		Order("checkin_time desc").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *ParkingSessionRepository) FindAll(ctx context.Context) ([]domain.ParkingSession, error) {
	var sessions []domain.ParkingSession
	err := r.db.WithContext(ctx).
		Select(sessionListColumns).
		Order("checkin_time desc").
		Find(&sessions).Error
	return sessions, err
}

func (r *ParkingSessionRepository) FindByPlateAndRange(ctx context.Context, plateNumber string, from, to time.Time) ([]domain.ParkingSession, error) {
	var sessions []domain.ParkingSession
	err := r.db.WithContext(ctx).
		Select(sessionListColumns).
		Where("plate_number = ? AND checkin_time >= ? AND checkin_time < ?", plateNumber, from, to).
		Order("checkin_time desc").
		Find(&sessions).Error
	return sessions, err
}

func (r *ParkingSessionRepository) CountCheckins(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ParkingSession{}).
		Where("checkin_time >= ? AND checkin_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *ParkingSessionRepository) CountCheckouts(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ParkingSession{}).
		Where("checkout_time >= ? AND checkout_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *ParkingSessionRepository) SumGuestFees(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.ParkingSession{}).
		Where("checkout_time >= ? AND checkout_time < ?", from, to).
		Select("COALESCE(SUM(parking_fee), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ParkingSessionRepository) SumGuestFeesByDate(ctx context.Context, from, to time.Time) ([]domain.DailyIncome, error) {
	var rows []domain.DailyIncome
	err := r.db.WithContext(ctx).
		Model(&domain.ParkingSession{}).
		Where("checkout_time >= ? AND checkout_time < ?", from, to).
		Select("TO_CHAR(checkout_time, 'YYYY-MM-DD') AS date, COALESCE(SUM(parking_fee), 0) AS amount").
		Group("TO_CHAR(checkout_time, 'YYYY-MM-DD')").
		Order("date asc").
		Scan(&rows).Error
	return rows, err
}
