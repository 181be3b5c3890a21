package education

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

type ModuleEducation struct{}

func (m *ModuleEducation) GetName() string {
	return "Education"
}

func (m *ModuleEducation) Init() {
	log = logger.New("Education")
	db = store.New(database.DB)
}
