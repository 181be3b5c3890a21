package model

// Person 个人基本信息，全系统始终存在一条默认记录（id=1）
type Person struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(50);not null" json:"name"`
	Gender         string `gorm:"type:varchar(10)" json:"gender"`
	BirthDate      string `gorm:"type:varchar(20)" json:"birth_date"`
	Email          string `gorm:"type:varchar(100)" json:"email"`
	Phone          string `gorm:"type:varchar(30)" json:"phone"`
	Address        string `gorm:"type:varchar(255)" json:"address"`
	Occupation     string `gorm:"type:varchar(50)" json:"occupation"`
	EducationLevel string `gorm:"type:varchar(20)" json:"education_level"`
	CreatedAt      string `gorm:"type:varchar(30)" json:"created_at"`
}

func (Person) TableName() string {
	return "personal_info"
}
