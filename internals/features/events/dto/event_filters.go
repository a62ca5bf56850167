package dto

import (
	"time"

	"ewm_backend/internals/features/events/model"
)

// Filter listing admin (GET /admin/events)
type AdminSearchFilter struct {
	Users      []uint
	States     []model.State
	Categories []uint
	RangeStart *time.Time
	RangeEnd   *time.Time
	From       int
	Size       int
}

const (
	SortEventDate = "EVENT_DATE"
	SortViews     = "VIEWS"
)

// Filter listing publik (GET /events)
type PublicSearchFilter struct {
	Text          string
	Categories    []uint
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          string // SortEventDate | SortViews | ""
	From          int
	Size          int
}
