package model

import "time"

type CompilationModel struct {
	CompilationID     uint      `gorm:"column:compilation_id;primaryKey" json:"compilation_id"`
	CompilationTitle  string    `gorm:"column:compilation_title;type:varchar(120);not null" json:"compilation_title"`
	CompilationPinned bool      `gorm:"column:compilation_pinned;not null;default:false" json:"compilation_pinned"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CompilationModel) TableName() string {
	return "compilations"
}

// Join table eksplisit compilation ↔ event (tanpa relasi lazy GORM,
// membership dibaca lewat query sendiri).
type CompilationEventModel struct {
	CompilationEventCompilationID uint `gorm:"column:compilation_event_compilation_id;primaryKey" json:"compilation_event_compilation_id"`
	CompilationEventEventID       uint `gorm:"column:compilation_event_event_id;primaryKey" json:"compilation_event_event_id"`
}

func (CompilationEventModel) TableName() string {
	return "compilation_events"
}
