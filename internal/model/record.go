package model

// Record 通用记录（自由文本分类，与 Category 表无关）
// 删除 Person 时随之删除，与其他三张子表保持一致
type Record struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PersonID   uint   `gorm:"default:1" json:"person_id"`
	Title      string `gorm:"type:varchar(100);not null" json:"title"`
	Category   string `gorm:"type:varchar(50);not null" json:"category"`
	Notes      string `gorm:"type:varchar(500)" json:"notes"`
	Priority   string `gorm:"type:varchar(10)" json:"priority"`
	Progress   int    `json:"progress"`
	CreatedAt  string `gorm:"type:varchar(30)" json:"created_at"`
	Attachment string `gorm:"type:varchar(255)" json:"attachment"`

	Person Person `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Record) TableName() string {
	return "records"
}
