package repository

import (
	"context"

	"gorm.io/gorm"

	"ewm_backend/internals/features/events/dto"
	"ewm_backend/internals/features/events/model"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (model.EventModel, error) {
	var event model.EventModel
	err := r.DB.WithContext(ctx).First(&event, "event_id = ?", id).Error
	return event, err
}

func (r *EventRepository) Save(ctx context.Context, ev *model.EventModel) error {
	return r.DB.WithContext(ctx).Save(ev).Error
}

func (r *EventRepository) SaveAll(ctx context.Context, evs []model.EventModel) error {
	if len(evs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Save(&evs).Error
}

func (r *EventRepository) FindByInitiator(ctx context.Context, userID uint, from, size int) ([]model.EventModel, error) {
	var events []model.EventModel
	err := r.DB.WithContext(ctx).
		Where("event_initiator_id = ?", userID).
		Order("event_id ASC").
		Offset(from).Limit(size).
		Find(&events).Error
	return events, err
}

func (r *EventRepository) AdminSearch(ctx context.Context, f dto.AdminSearchFilter) ([]model.EventModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.EventModel{})

	if len(f.Users) > 0 {
		q = q.Where("event_initiator_id IN ?", f.Users)
	}
	if len(f.States) > 0 {
		q = q.Where("event_state IN ?", f.States)
	}
	if len(f.Categories) > 0 {
		q = q.Where("event_category_id IN ?", f.Categories)
	}
	if f.RangeStart != nil {
		q = q.Where("event_date >= ?", *f.RangeStart)
	}
	if f.RangeEnd != nil {
		q = q.Where("event_date <= ?", *f.RangeEnd)
	}

	var events []model.EventModel
	err := q.Order("event_id ASC").Offset(f.From).Limit(f.Size).Find(&events).Error
	return events, err
}

func (r *EventRepository) PublicSearch(ctx context.Context, f dto.PublicSearchFilter) ([]model.EventModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.EventModel{}).
		Where("event_state = ?", model.StatePublished)

	if f.Text != "" {
		pattern := "%" + f.Text + "%"
		q = q.Where("event_annotation ILIKE ? OR event_description ILIKE ?", pattern, pattern)
	}
	if len(f.Categories) > 0 {
		q = q.Where("event_category_id IN ?", f.Categories)
	}
	if f.Paid != nil {
		q = q.Where("event_paid = ?", *f.Paid)
	}
	if f.RangeStart != nil {
		q = q.Where("event_date >= ?", *f.RangeStart)
	}
	if f.RangeEnd != nil {
		q = q.Where("event_date <= ?", *f.RangeEnd)
	}
	if f.OnlyAvailable {
		q = q.Where("event_participant_limit = 0 OR event_confirmed_requests < event_participant_limit")
	}

	switch f.Sort {
	case dto.SortViews:
		q = q.Order("event_views DESC")
	case dto.SortEventDate:
		q = q.Order("event_date ASC")
	default:
		q = q.Order("event_id ASC")
	}

	var events []model.EventModel
	err := q.Offset(f.From).Limit(f.Size).Find(&events).Error
	return events, err
}
