package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lakbay/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	Update(ctx context.Context, trip *db_models.Trip) error
	FindById(ctx context.Context, id string) (*db_models.Trip, error)
	FindByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, int64, error)
	Delete(ctx context.Context, id string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (t *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Save(trip).Error
}

func (t *tripRepository) FindById(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (t *tripRepository) FindByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, int64, error) {
	var trips []db_models.Trip
	var total int64

	base := t.db.WithContext(ctx).Model(&db_models.Trip{}).Where("account_id = ?", accountID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error

	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

func (t *tripRepository) Delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error
}
