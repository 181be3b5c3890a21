package category

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

type ModuleCategory struct{}

func (m *ModuleCategory) GetName() string {
	return "Category"
}

func (m *ModuleCategory) Init() {
	log = logger.New("Category")
	db = store.New(database.DB)
}
