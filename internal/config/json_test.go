package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "healthtrack",
			"token_duration": "1h",
			"version": "1.2.3"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"db": {"dsn": "healthtrack.db"}
		},
		"model": {
			"artifact_path": "artifacts/diabetes_rf.json"
		},
		"narrative": {
			"base_url": "https://api.openai.com",
			"api_key": "sk-test",
			"model_name": "gpt-4o-mini",
			"request_timeout": "20s"
		},
		"mail": {
			"host": "smtp.example.com",
			"port": 587,
			"from": "reports@healthtrack.example"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "healthtrack.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "artifacts/diabetes_rf.json", cfg.Model.ArtifactPath)
	assert.Equal(t, 20*time.Second, cfg.Narrative.RequestTimeout)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "reports@healthtrack.example", cfg.Mail.From)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeConfigFile(t, "{broken")

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"duration string", `"1h30m"`, 90 * time.Minute},
		{"nanosecond number", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_BadString(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"eternity"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(raw))

	var d Duration
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, 45*time.Second, time.Duration(d))
}
