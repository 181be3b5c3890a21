package module

import (
	"personal-info-system/internal/module/assistant"
	"personal-info-system/internal/module/category"
	"personal-info-system/internal/module/education"
	"personal-info-system/internal/module/honor"
	"personal-info-system/internal/module/person"
	"personal-info-system/internal/module/ping"
	"personal-info-system/internal/module/record"
	"personal-info-system/internal/module/schedule"
	"personal-info-system/internal/module/stats"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&person.ModulePerson{},
		&category.ModuleCategory{},
		&honor.ModuleHonor{},
		&schedule.ModuleSchedule{},
		&education.ModuleEducation{},
		&record.ModuleRecord{},
		&assistant.ModuleAssistant{},
		&stats.ModuleStats{},
	})
}
