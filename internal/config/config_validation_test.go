package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "healthtrack",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
		Storage: Storage{
			DB: DB{DSN: "healthtrack.db"},
		},
		Model: Model{
			ArtifactPath: "artifacts/diabetes_rf.json",
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingRequiredValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"no dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no artifact path", func(cfg *StructuredConfig) { cfg.Model.ArtifactPath = "" }, ErrInvalidModelConfigs},
		{"no token sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no server address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}
