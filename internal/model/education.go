package model

// Education 教育经历；随 Person 级联删除
type Education struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PersonID     uint    `gorm:"not null" json:"person_id"`
	Institution  string  `gorm:"type:varchar(100);not null" json:"institution"`
	Degree       string  `gorm:"type:varchar(20)" json:"degree"`
	Major        string  `gorm:"type:varchar(50)" json:"major"`
	StartDate    string  `gorm:"type:varchar(20)" json:"start_date"`
	EndDate      string  `gorm:"type:varchar(20)" json:"end_date"`
	GPA          float64 `gorm:"column:gpa" json:"gpa"`
	Achievements string  `gorm:"type:varchar(500)" json:"achievements"`
	CreatedAt    string  `gorm:"type:varchar(30)" json:"created_at"`

	Person Person `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Education) TableName() string {
	return "education"
}
