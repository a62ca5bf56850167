package model

import "time"

// HitModel append-only: satu baris per page-view yang dikirim ewm-service.
type HitModel struct {
	HitID        uint      `gorm:"column:hit_id;primaryKey" json:"hit_id"`
	HitApp       string    `gorm:"column:hit_app;type:varchar(64);not null" json:"hit_app"`
	HitURI       string    `gorm:"column:hit_uri;type:varchar(512);not null;index" json:"hit_uri"`
	HitIP        string    `gorm:"column:hit_ip;type:varchar(45);not null" json:"hit_ip"`
	HitTimestamp time.Time `gorm:"column:hit_timestamp;not null;index" json:"hit_timestamp"`
}

func (HitModel) TableName() string {
	return "hits"
}
