package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type CardRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCardRepository(db *gorm.DB, log *zap.Logger) ports.CardRepository {
	return &CardRepository{
		db:  db,
		log: log,
	}
}

func (r *CardRepository) Save(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	err := r.db.WithContext(ctx).Preload("Bike").First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) FindByBikeID(ctx context.Context, bikeID string) ([]domain.Card, error) {
	var cards []domain.Card
	err := r.db.WithContext(ctx).Where("bike_id = ?", bikeID).Find(&cards).Error
	return cards, err
}
