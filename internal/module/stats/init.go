package stats

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

type ModuleStats struct{}

func (m *ModuleStats) GetName() string {
	return "Stats"
}

func (m *ModuleStats) Init() {
	log = logger.New("Stats")
	db = store.New(database.DB)
}
