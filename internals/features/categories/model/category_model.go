package model

type CategoryModel struct {
	CategoryID   uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName string `gorm:"column:category_name;type:varchar(50);not null;unique" json:"category_name"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
