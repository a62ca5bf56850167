package dto

import (
	categoryModel "ewm_backend/internals/features/categories/model"
	"ewm_backend/internals/features/events/model"
	userModel "ewm_backend/internals/features/users/model"
	helper "ewm_backend/internals/helpers"
)

type LocationDto struct {
	Lat float32 `json:"lat"`
	Lon float32 `json:"lon"`
}

// Payload create event (POST /users/:userId/events)
type NewEventRequest struct {
	Title             string       `json:"title" validate:"required,min=3,max=120"`
	Annotation        string       `json:"annotation" validate:"required,min=20,max=2000"`
	Description       string       `json:"description" validate:"required,min=20,max=7000"`
	Category          uint         `json:"category" validate:"required"`
	Location          *LocationDto `json:"location" validate:"required"`
	EventDate         string       `json:"eventDate" validate:"required"` // "yyyy-MM-dd HH:mm:ss"
	Paid              bool         `json:"paid"`
	ParticipantLimit  *int         `json:"participantLimit"` // nil → 0 (tanpa batas); negatif ditolak di service
	RequestModeration *bool        `json:"requestModeration"`
}

// Payload update event (partial update: field nil/blank tidak diubah)
type UpdateEventRequest struct {
	Title             *string      `json:"title" validate:"omitempty,min=3,max=120"`
	Annotation        *string      `json:"annotation" validate:"omitempty,min=20,max=2000"`
	Description       *string      `json:"description" validate:"omitempty,min=20,max=7000"`
	Category          *uint        `json:"category"`
	Location          *LocationDto `json:"location"`
	EventDate         *string      `json:"eventDate"`
	Paid              *bool        `json:"paid"`
	ParticipantLimit  *int         `json:"participantLimit"`
	RequestModeration *bool        `json:"requestModeration"`
	StateAction       *string      `json:"stateAction"`
}

type CategoryRefDto struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserShortDto struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EventFullResponse struct {
	ID                uint           `json:"id"`
	Title             string         `json:"title"`
	Annotation        string         `json:"annotation"`
	Description       string         `json:"description"`
	Category          CategoryRefDto `json:"category"`
	Initiator         UserShortDto   `json:"initiator"`
	Location          LocationDto    `json:"location"`
	State             model.State    `json:"state"`
	EventDate         string         `json:"eventDate"`
	CreatedOn         string         `json:"createdOn"`
	PublishedOn       string         `json:"publishedOn,omitempty"`
	Paid              bool           `json:"paid"`
	ParticipantLimit  int            `json:"participantLimit"`
	RequestModeration bool           `json:"requestModeration"`
	ConfirmedRequests int64          `json:"confirmedRequests"`
	Views             int64          `json:"views"`
}

type EventShortResponse struct {
	ID                uint           `json:"id"`
	Title             string         `json:"title"`
	Annotation        string         `json:"annotation"`
	Category          CategoryRefDto `json:"category"`
	Initiator         UserShortDto   `json:"initiator"`
	EventDate         string         `json:"eventDate"`
	Paid              bool           `json:"paid"`
	ConfirmedRequests int64          `json:"confirmedRequests"`
	Views             int64          `json:"views"`
}

// Gabungan entity yang dibutuhkan untuk menyusun satu response event.
type EventBundle struct {
	Event    model.EventModel
	Category categoryModel.CategoryModel
	User     userModel.UserModel
	Location model.LocationModel
}

func ToEventFullResponse(b EventBundle) EventFullResponse {
	created := b.Event.CreatedAt
	return EventFullResponse{
		ID:         b.Event.EventID,
		Title:      b.Event.EventTitle,
		Annotation: b.Event.EventAnnotation,
		Description: b.Event.EventDescription,
		Category: CategoryRefDto{
			ID:   b.Category.CategoryID,
			Name: b.Category.CategoryName,
		},
		Initiator: UserShortDto{
			ID:   b.User.UserID,
			Name: b.User.UserName,
		},
		Location: LocationDto{
			Lat: b.Location.LocationLat,
			Lon: b.Location.LocationLon,
		},
		State:             b.Event.EventState,
		EventDate:         helper.FormatDateTime(&b.Event.EventDate),
		CreatedOn:         helper.FormatDateTime(&created),
		PublishedOn:       helper.FormatDateTime(b.Event.EventPublishedOn),
		Paid:              b.Event.EventPaid,
		ParticipantLimit:  b.Event.EventParticipantLimit,
		RequestModeration: b.Event.EventRequestModeration,
		ConfirmedRequests: b.Event.EventConfirmedRequests,
		Views:             b.Event.EventViews,
	}
}

func ToEventShortResponse(b EventBundle) EventShortResponse {
	return EventShortResponse{
		ID:         b.Event.EventID,
		Title:      b.Event.EventTitle,
		Annotation: b.Event.EventAnnotation,
		Category: CategoryRefDto{
			ID:   b.Category.CategoryID,
			Name: b.Category.CategoryName,
		},
		Initiator: UserShortDto{
			ID:   b.User.UserID,
			Name: b.User.UserName,
		},
		EventDate:         helper.FormatDateTime(&b.Event.EventDate),
		Paid:              b.Event.EventPaid,
		ConfirmedRequests: b.Event.EventConfirmedRequests,
		Views:             b.Event.EventViews,
	}
}
