package repository

import (
	"context"

	"gorm.io/gorm"

	"ewm_backend/internals/features/requests/model"
)

type RequestRepository struct {
	DB *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{DB: db}
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint) (model.RequestModel, error) {
	var request model.RequestModel
	err := r.DB.WithContext(ctx).First(&request, "request_id = ?", id).Error
	return request, err
}

func (r *RequestRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.RequestModel, error) {
	var requests []model.RequestModel
	err := r.DB.WithContext(ctx).Where("request_id IN ?", ids).Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) FindByEvent(ctx context.Context, eventID uint) ([]model.RequestModel, error) {
	var requests []model.RequestModel
	err := r.DB.WithContext(ctx).
		Where("request_event_id = ?", eventID).
		Order("request_id ASC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) FindByRequester(ctx context.Context, userID uint) ([]model.RequestModel, error) {
	var requests []model.RequestModel
	err := r.DB.WithContext(ctx).
		Where("request_requester_id = ?", userID).
		Order("request_id ASC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) ExistsByEventAndRequester(ctx context.Context, eventID, userID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RequestModel{}).
		Where("request_event_id = ? AND request_requester_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *RequestRepository) Save(ctx context.Context, req *model.RequestModel) error {
	return r.DB.WithContext(ctx).Save(req).Error
}

func (r *RequestRepository) SaveAll(ctx context.Context, reqs []model.RequestModel) error {
	if len(reqs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Save(&reqs).Error
}

func (r *RequestRepository) CountByEventAndStatus(ctx context.Context, eventID uint, status model.Status) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RequestModel{}).
		Where("request_event_id = ? AND request_status = ?", eventID, status).
		Count(&count).Error
	return count, err
}
