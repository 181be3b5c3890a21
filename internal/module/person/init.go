package person

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

type ModulePerson struct{}

func (p *ModulePerson) GetName() string {
	return "Person"
}

func (p *ModulePerson) Init() {
	log = logger.New("Person")
	db = store.New(database.DB)
}
