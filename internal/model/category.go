package model

// Category 荣誉分类，独立生命周期，删除分类不影响已有荣誉
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
