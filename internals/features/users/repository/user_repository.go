package repository

import (
	"context"

	"gorm.io/gorm"

	"ewm_backend/internals/features/users/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (model.UserModel, error) {
	var user model.UserModel
	err := r.DB.WithContext(ctx).First(&user, "user_id = ?", id).Error
	return user, err
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]model.UserModel, error) {
	var users []model.UserModel
	if err := r.DB.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]model.UserModel, len(users))
	for _, u := range users {
		out[u.UserID] = u
	}
	return out, nil
}
