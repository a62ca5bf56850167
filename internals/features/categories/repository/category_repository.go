package repository

import (
	"context"

	"gorm.io/gorm"

	"ewm_backend/internals/features/categories/model"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (model.CategoryModel, error) {
	var category model.CategoryModel
	err := r.DB.WithContext(ctx).First(&category, "category_id = ?", id).Error
	return category, err
}

func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]model.CategoryModel, error) {
	var categories []model.CategoryModel
	if err := r.DB.WithContext(ctx).Where("category_id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]model.CategoryModel, len(categories))
	for _, c := range categories {
		out[c.CategoryID] = c
	}
	return out, nil
}
