package model

type LocationModel struct {
	LocationID  uint    `gorm:"column:location_id;primaryKey" json:"location_id"`
	LocationLat float32 `gorm:"column:location_lat;not null" json:"location_lat"`
	LocationLon float32 `gorm:"column:location_lon;not null" json:"location_lon"`
}

func (LocationModel) TableName() string {
	return "locations"
}
