// Package adapter provides the HTTP client used by the command-line tool to
// talk to a running healthtrack server.
package adapter

import (
	"context"

	"github.com/healthtrack-app/healthtrack/models"
)

// ServerAdapter is the client-side view of the healthtrack HTTP API.
type ServerAdapter interface {
	// Login resolves an account and stores the issued bearer token on the
	// adapter for subsequent calls.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// SetToken installs a previously issued bearer token, and Token returns
	// the currently stored one, so a CLI can reuse a session across runs.
	SetToken(token string)
	Token() string

	// Predict submits one intake form and returns the full result.
	Predict(ctx context.Context, input models.PredictionInput) (models.PredictionResponse, error)

	// Narrative requests lifestyle advice for the last prediction.
	Narrative(ctx context.Context) (models.NarrativeResponse, error)

	// History returns the stored prediction history, newest first.
	History(ctx context.Context) ([]models.PredictionRecord, error)

	// Version reports the server build version.
	Version(ctx context.Context) (models.VersionResponse, error)
}
