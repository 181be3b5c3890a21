package honor

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

type ModuleHonor struct{}

func (m *ModuleHonor) GetName() string {
	return "Honor"
}

func (m *ModuleHonor) Init() {
	log = logger.New("Honor")
	db = store.New(database.DB)
}
