package repository

import (
	"context"

	"gorm.io/gorm"

	"ewm_backend/internals/features/events/model"
)

type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

func (r *LocationRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]model.LocationModel, error) {
	var locations []model.LocationModel
	if err := r.DB.WithContext(ctx).Where("location_id IN ?", ids).Find(&locations).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]model.LocationModel, len(locations))
	for _, loc := range locations {
		out[loc.LocationID] = loc
	}
	return out, nil
}

func (r *LocationRepository) Save(ctx context.Context, loc *model.LocationModel) error {
	return r.DB.WithContext(ctx).Save(loc).Error
}
