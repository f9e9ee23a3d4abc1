package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_ISSUER", "healthtrack")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/healthtrack")
	t.Setenv("MODEL_ARTIFACT_PATH", "artifacts/diabetes_rf.json")
	t.Setenv("NARRATIVE_BASE_URL", "https://api.openai.com")
	t.Setenv("NARRATIVE_API_KEY", "sk-test")
	t.Setenv("NARRATIVE_MODEL_NAME", "gpt-4o-mini")
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_PORT", "587")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "healthtrack", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost:5432/healthtrack", cfg.Storage.DB.DSN)
	assert.Equal(t, "artifacts/diabetes_rf.json", cfg.Model.ArtifactPath)
	assert.Equal(t, "https://api.openai.com", cfg.Narrative.BaseURL)
	assert.Equal(t, "sk-test", cfg.Narrative.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Narrative.ModelName)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.TokenDuration)
}
