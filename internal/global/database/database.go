package database

import (
	"fmt"
	"os"
	"path/filepath"

	"personal-info-system/config"
	"personal-info-system/internal/model"
	"personal-info-system/tools"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.Person{},
	&model.Category{},
	&model.Honor{},
	&model.Schedule{},
	&model.Education{},
	&model.Record{},
}

func Init() {
	gormConfig := &gorm.Config{}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	var dialector gorm.Dialector
	if config.Get().Mysql.Enable {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.Get().Mysql.Username,
			config.Get().Mysql.Password,
			config.Get().Mysql.Host,
			config.Get().Mysql.Port,
			config.Get().Mysql.DBName,
		)
		dialector = mysql.Open(dsn)
	} else {
		path := config.Get().Sqlite.Path
		if path == "" {
			tools.PanicOnErr(os.MkdirAll(config.Get().Storage.Home, 0o755))
			path = filepath.Join(config.Get().Storage.Home, "personal_management.db")
		}
		// _fk=1 打开 SQLite 的外键约束
		dialector = sqlite.Open(path + "?_fk=1")
	}

	db, err := gorm.Open(dialector, gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
	tools.PanicOnErr(Seed(DB))
}

// Seed 首次初始化时写入默认个人信息与默认分类
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Person{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	person := model.Person{
		Name:           "胡一心",
		Gender:         "男",
		BirthDate:      "2025-01-01",
		Email:          "54088@email.com",
		Phone:          "666666",
		Address:        "上海杨浦",
		Occupation:     "雅典娜",
		EducationLevel: "本科",
		CreatedAt:      model.Now(),
	}
	if err := db.Create(&person).Error; err != nil {
		return err
	}

	categories := []model.Category{
		{Name: "学术荣誉", Description: "奖学金、学术竞赛等奖项"},
		{Name: "工作成就", Description: "工作相关的奖励和成就"},
		{Name: "技能证书", Description: "各类技能认证证书"},
		{Name: "项目经验", Description: "完成的重要项目"},
		{Name: "其他荣誉", Description: "其他类型的荣誉和成就"},
	}
	return db.Create(&categories).Error
}
