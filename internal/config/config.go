// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// healthtrack application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Model holds the risk model artifact settings.
	Model Model `envPrefix:"MODEL_"`

	// Narrative holds the settings of the external language-model service
	// used to verbalise explanations.
	Narrative Narrative `envPrefix:"NARRATIVE_"`

	// Mail holds SMTP settings for dashboard report delivery.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A postgres:// URI selects the
	// PostgreSQL driver; any other value is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Model holds the location of the serialized risk model artifact.
type Model struct {
	// ArtifactPath is the path to the JSON model artifact (scaler plus
	// forest) loaded once at startup.
	// Env: MODEL_ARTIFACT_PATH
	ArtifactPath string `env:"ARTIFACT_PATH"`
}

// Narrative holds the settings of the external chat-completion service.
type Narrative struct {
	// BaseURL is the root URL of the chat-completion API
	// (e.g. "https://api.openai.com").
	// Env: NARRATIVE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the bearer token sent with every completion request.
	// Must be kept confidential.
	// Env: NARRATIVE_API_KEY
	APIKey string `env:"API_KEY"`

	// ModelName is the completion model identifier (e.g. "gpt-4o-mini").
	// Env: NARRATIVE_MODEL_NAME
	ModelName string `env:"MODEL_NAME"`

	// RequestTimeout bounds a single completion request.
	// Env: NARRATIVE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds SMTP settings for dashboard report delivery.
type Mail struct {
	// Host is the SMTP server host.
	// Env: MAIL_HOST
	Host string `env:"HOST"`

	// Port is the SMTP server port.
	// Env: MAIL_PORT
	Port int `env:"PORT"`

	// From is the sender address on outgoing reports.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// Username authenticates against the SMTP server. Empty disables
	// authentication.
	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`

	// Password authenticates against the SMTP server.
	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (loaded into the process environment if present)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
