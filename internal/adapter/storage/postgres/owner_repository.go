package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type OwnerRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOwnerRepository(db *gorm.DB, log *zap.Logger) ports.OwnerRepository {
	return &OwnerRepository{
		db:  db,
		log: log,
	}
}

func (r *OwnerRepository) Save(ctx context.Context, owner *domain.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

// FindActiveByBikeID keeps creation order so face matching walks owners the
// way they were registered.
func (r *OwnerRepository) FindActiveByBikeID(ctx context.Context, bikeID string) ([]domain.Owner, error) {
	var owners []domain.Owner
	err := r.db.WithContext(ctx).
		Where("bike_id = ? AND active = ?", bikeID, true).
		Order("created_at asc").
		Find(&owners).Error
	return owners, err
}
