package model

// Schedule 日程信息；随 Person 级联删除
type Schedule struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PersonID    uint   `gorm:"not null" json:"person_id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	Description string `gorm:"type:varchar(500)" json:"description"`
	StartTime   string `gorm:"type:varchar(30)" json:"start_time"`
	EndTime     string `gorm:"type:varchar(30)" json:"end_time"`
	Location    string `gorm:"type:varchar(100)" json:"location"`
	Status      string `gorm:"type:varchar(10);default:待开始" json:"status"`
	Priority    string `gorm:"type:varchar(10);default:中" json:"priority"`
	Reminder    string `gorm:"type:varchar(50)" json:"reminder"`
	CreatedAt   string `gorm:"type:varchar(30)" json:"created_at"`

	Person Person `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Schedule) TableName() string {
	return "schedules"
}
