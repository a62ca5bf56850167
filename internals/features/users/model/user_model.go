package model

import "time"

type UserModel struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(250);not null" json:"user_name"`
	UserEmail string    `gorm:"column:user_email;type:varchar(254);not null;unique" json:"user_email"` // unik, pelanggaran → 409
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
