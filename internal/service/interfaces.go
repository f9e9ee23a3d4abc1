package service

import (
	"context"

	"github.com/healthtrack-app/healthtrack/models"
)

// AuthService handles account resolution and JWT token lifecycle.
type AuthService interface {
	// Login resolves the request to an account, creating it when the user
	// identifies with a fresh name+email pair, and issues a signed token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// ValidateToken verifies a compact token string and returns the parsed
	// token with the account unique_id populated.
	ValidateToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PredictionService runs the full prediction pipeline for one submission.
type PredictionService interface {
	// Predict validates the raw answers, computes the prediction and its
	// attribution, persists the daily record and caches the session state.
	// A storage failure degrades to a warning on the response instead of
	// an error.
	Predict(ctx context.Context, userID string, input models.PredictionInput) (models.PredictionResponse, error)
}

// NarrativeService turns the session's cached attribution into lifestyle
// advice via the language-model backend.
type NarrativeService interface {
	Narrate(ctx context.Context, userID string) (models.NarrativeResponse, error)
}

// DashboardService serves stored prediction history and report delivery.
type DashboardService interface {
	// History returns the user's stored predictions, newest first.
	History(ctx context.Context, userID string) ([]models.PredictionRecord, error)

	// Users lists every account with at least one stored prediction.
	Users(ctx context.Context) ([]models.DashboardUser, error)

	// EmailReport renders the user's history as a plaintext table and
	// mails it to the given address.
	EmailReport(ctx context.Context, userID, email string) error
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	Version(ctx context.Context) models.VersionResponse
}

// Predictor is the classifier surface the prediction service depends on.
type Predictor interface {
	Predict(vector models.FeatureVector) (label string, probability float64)
}

// Explainer is the attribution surface the prediction and narrative services
// depend on.
type Explainer interface {
	Explain(vector models.FeatureVector) ([]models.FeatureContribution, error)
}
