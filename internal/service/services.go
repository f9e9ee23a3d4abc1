package service

import (
	"github.com/healthtrack-app/healthtrack/internal/config"
	"github.com/healthtrack-app/healthtrack/internal/llm"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/mailer"
	"github.com/healthtrack-app/healthtrack/internal/session"
	"github.com/healthtrack-app/healthtrack/internal/store"
)

// Services bundles every application service for transport-layer wiring.
type Services struct {
	AuthService       AuthService
	PredictionService PredictionService
	NarrativeService  NarrativeService
	DashboardService  DashboardService
	AppInfoService    AppInfoService
}

// Deps carries the non-repository collaborators of the service layer.
type Deps struct {
	Predictor Predictor
	Explainer Explainer
	Completer llm.ChatCompleter
	Mailer    mailer.Mailer
	Sessions  *session.Store
}

// NewServices wires all services over the shared storages and dependencies.
func NewServices(storages *store.Storages, deps Deps, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		PredictionService: NewPredictionService(deps.Predictor, deps.Explainer, storages.PredictionRepository, deps.Sessions, logger),
		NarrativeService:  NewNarrativeService(deps.Completer, deps.Explainer, deps.Sessions, logger),
		DashboardService:  NewDashboardService(storages.PredictionRepository, deps.Mailer, logger),
		AppInfoService:    NewAppInfoService(cfg.App),
	}
}
