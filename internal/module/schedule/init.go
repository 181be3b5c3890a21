package schedule

import (
	"log/slog"

	"personal-info-system/internal/global/database"
	"personal-info-system/internal/global/logger"
	"personal-info-system/internal/store"
)

var (
	log *slog.Logger
	db  *store.Store
)

type ModuleSchedule struct{}

func (m *ModuleSchedule) GetName() string {
	return "Schedule"
}

func (m *ModuleSchedule) Init() {
	log = logger.New("Schedule")
	db = store.New(database.DB)
}
