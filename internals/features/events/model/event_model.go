package model

import (
	"time"
)

// State lifecycle event: PENDING → PUBLISHED | CANCELED
type State string

const (
	StatePending   State = "PENDING"
	StatePublished State = "PUBLISHED"
	StateCanceled  State = "CANCELED"
)

// ParseState memetakan string query param ke State; nilai tak dikenal → false.
func ParseState(raw string) (State, bool) {
	switch State(raw) {
	case StatePending, StatePublished, StateCanceled:
		return State(raw), true
	}
	return "", false
}

// StateAction dari payload update (admin maupun initiator).
type StateAction string

const (
	ActionPublishEvent StateAction = "PUBLISH_EVENT"
	ActionRejectEvent  StateAction = "REJECT_EVENT"
	ActionCancelReview StateAction = "CANCEL_REVIEW"
	ActionSendToReview StateAction = "SEND_TO_REVIEW"
)

func ParseStateAction(raw string) (StateAction, bool) {
	switch StateAction(raw) {
	case ActionPublishEvent, ActionRejectEvent, ActionCancelReview, ActionSendToReview:
		return StateAction(raw), true
	}
	return "", false
}

type EventModel struct {
	EventID                uint       `gorm:"column:event_id;primaryKey" json:"event_id"`
	EventTitle             string     `gorm:"column:event_title;type:varchar(120);not null" json:"event_title"`
	EventAnnotation        string     `gorm:"column:event_annotation;type:varchar(2000);not null" json:"event_annotation"`
	EventDescription       string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventCategoryID        uint       `gorm:"column:event_category_id;not null" json:"event_category_id"`  // FK ke categories
	EventInitiatorID       uint       `gorm:"column:event_initiator_id;not null" json:"event_initiator_id"` // FK ke users
	EventLocationID        uint       `gorm:"column:event_location_id;not null" json:"event_location_id"`   // FK ke locations
	EventState             State      `gorm:"column:event_state;type:varchar(16);not null;default:PENDING" json:"event_state"`
	EventDate              time.Time  `gorm:"column:event_date;not null" json:"event_date"`
	EventPublishedOn       *time.Time `gorm:"column:event_published_on" json:"event_published_on,omitempty"` // diisi hanya saat publish
	EventPaid              bool       `gorm:"column:event_paid;not null;default:false" json:"event_paid"`
	EventParticipantLimit  int        `gorm:"column:event_participant_limit;not null;default:0" json:"event_participant_limit"` // 0 = tanpa batas
	EventRequestModeration bool       `gorm:"column:event_request_moderation;not null;default:true" json:"event_request_moderation"`
	EventConfirmedRequests int64      `gorm:"column:event_confirmed_requests;not null;default:0" json:"event_confirmed_requests"` // cache, dihitung ulang dari tabel requests
	EventViews             int64      `gorm:"column:event_views;not null;default:0" json:"event_views"`                           // cache dari stats-service

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
