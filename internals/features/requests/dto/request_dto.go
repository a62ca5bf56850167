package dto

import (
	"ewm_backend/internals/features/requests/model"
	helper "ewm_backend/internals/helpers"
)

type RequestDto struct {
	ID        uint         `json:"id"`
	Created   string       `json:"created"`
	Event     uint         `json:"event"`
	Requester uint         `json:"requester"`
	Status    model.Status `json:"status"`
}

// Payload moderasi batch (PATCH /users/:userId/events/:eventId/requests)
type UpdateStatusRequest struct {
	RequestIDs []uint `json:"requestIds" validate:"required,min=1"`
	Status     string `json:"status" validate:"required"` // CONFIRMED | REJECTED
}

// Hasil moderasi: partisi dua list, urut sesuai urutan pemrosesan input.
type UpdateStatusResult struct {
	ConfirmedRequests []RequestDto `json:"confirmedRequests"`
	RejectedRequests  []RequestDto `json:"rejectedRequests"`
}

func ToRequestDto(r model.RequestModel) RequestDto {
	created := r.CreatedAt
	return RequestDto{
		ID:        r.RequestID,
		Created:   helper.FormatDateTime(&created),
		Event:     r.RequestEventID,
		Requester: r.RequestRequesterID,
		Status:    r.RequestStatus,
	}
}

func ToRequestDtoList(requests []model.RequestModel) []RequestDto {
	out := make([]RequestDto, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToRequestDto(r))
	}
	return out
}
