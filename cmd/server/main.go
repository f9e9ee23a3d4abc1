package main

import (
	"context"
	"fmt"

	"github.com/healthtrack-app/healthtrack/internal/config"
	"github.com/healthtrack-app/healthtrack/internal/explain"
	handlerhttp "github.com/healthtrack-app/healthtrack/internal/handler/http"
	"github.com/healthtrack-app/healthtrack/internal/llm"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/mailer"
	"github.com/healthtrack-app/healthtrack/internal/riskmodel"
	"github.com/healthtrack-app/healthtrack/internal/server"
	"github.com/healthtrack-app/healthtrack/internal/service"
	"github.com/healthtrack-app/healthtrack/internal/session"
	"github.com/healthtrack-app/healthtrack/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("healthtrack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// a broken or missing artifact means every prediction would fail,
	// so refuse to start
	model, err := riskmodel.NewModel(cfg.Model.ArtifactPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading model artifact")
	}

	engine := explain.NewEngine(model, log)

	completer := llm.NewClient(llm.ClientConfig{
		BaseURL:   cfg.Narrative.BaseURL,
		APIKey:    cfg.Narrative.APIKey,
		ModelName: cfg.Narrative.ModelName,
		Timeout:   cfg.Narrative.RequestTimeout,
	})

	reportMailer := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		From:     cfg.Mail.From,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
	})

	services := service.NewServices(storages, service.Deps{
		Predictor: model,
		Explainer: engine,
		Completer: completer,
		Mailer:    reportMailer,
		Sessions:  session.NewStore(),
	}, cfg, log)

	handlers := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
