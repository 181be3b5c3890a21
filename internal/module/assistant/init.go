package assistant

import (
	"log/slog"

	"personal-info-system/config"
	"personal-info-system/internal/engine"
	"personal-info-system/internal/global/database"
	"personal-info-system/internal/global/httpclient"
	"personal-info-system/internal/global/logger"
	"personal-info-system/internal/nlu"
	"personal-info-system/internal/store"
)

var (
	log      *slog.Logger
	eng      *engine.Engine
	sessions sessionStore
)

type ModuleAssistant struct{}

func (m *ModuleAssistant) GetName() string {
	return "Assistant"
}

func (m *ModuleAssistant) Init() {
	log = logger.New("Assistant")
	parser := nlu.NewParser(httpclient.Client, config.Get().AI)
	eng = engine.New(store.New(database.DB), parser)
	sessions = newSessionStore()
}
