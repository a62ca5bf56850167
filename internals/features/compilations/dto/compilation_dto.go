package dto

import (
	eventDto "ewm_backend/internals/features/events/dto"
)

type NewCompilationRequest struct {
	Title  string `json:"title" validate:"required,min=1,max=120"`
	Pinned bool   `json:"pinned"`
	Events []uint `json:"events"`
}

// Partial update: field nil tidak diubah; Events nil = membership tetap.
type UpdateCompilationRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=1,max=120"`
	Pinned *bool   `json:"pinned"`
	Events []uint  `json:"events"`
}

type CompilationResponse struct {
	ID     uint                          `json:"id"`
	Title  string                        `json:"title"`
	Pinned bool                          `json:"pinned"`
	Events []eventDto.EventShortResponse `json:"events"`
}
