package model

import "time"

// Status lifecycle request partisipasi.
// Transisi moderasi hanya PENDING → CONFIRMED | REJECTED;
// CANCELED hanya lewat aksi pemohon sendiri.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCanceled  Status = "CANCELED"
)

func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCanceled:
		return Status(raw), true
	}
	return "", false
}

type RequestModel struct {
	RequestID          uint      `gorm:"column:request_id;primaryKey" json:"request_id"`
	RequestEventID     uint      `gorm:"column:request_event_id;not null;index" json:"request_event_id"`   // FK ke events
	RequestRequesterID uint      `gorm:"column:request_requester_id;not null" json:"request_requester_id"` // FK ke users
	RequestStatus      Status    `gorm:"column:request_status;type:varchar(16);not null" json:"request_status"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RequestModel) TableName() string {
	return "requests"
}
