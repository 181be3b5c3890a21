package record

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

type ModuleRecord struct{}

func (m *ModuleRecord) GetName() string {
	return "Record"
}

func (m *ModuleRecord) Init() {
	log = logger.New("Record")
	db = store.New(database.DB)
}
