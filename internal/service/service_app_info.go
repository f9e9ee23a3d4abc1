package service

import (
	"context"

	"github.com/healthtrack-app/healthtrack/internal/config"
	"github.com/healthtrack-app/healthtrack/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports build metadata from configuration.
func NewAppInfoService(cfg config.App) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}
	return &appInfoService{version: version}
}

func (a *appInfoService) Version(_ context.Context) models.VersionResponse {
	return models.VersionResponse{Version: a.version}
}
