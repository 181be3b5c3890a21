package model

// Honor 荣誉信息；随 Person 级联删除，分类引用可悬空（置空，不阻塞分类删除）
type Honor struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	PersonID         uint   `gorm:"not null" json:"person_id"`
	CategoryID       *uint  `json:"category_id"`
	Title            string `gorm:"type:varchar(100);not null" json:"title"`
	Description      string `gorm:"type:varchar(500)" json:"description"`
	IssuingAuthority string `gorm:"type:varchar(100)" json:"issuing_authority"`
	IssueDate        string `gorm:"type:varchar(20)" json:"issue_date"`
	Priority         string `gorm:"type:varchar(10);default:中" json:"priority"`
	Progress         int    `gorm:"default:100" json:"progress"`
	Attachment       string `gorm:"type:varchar(255)" json:"attachment"`
	CreatedAt        string `gorm:"type:varchar(30)" json:"created_at"`

	Person   Person    `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Honor) TableName() string {
	return "honors"
}
