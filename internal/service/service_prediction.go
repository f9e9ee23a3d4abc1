// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/healthtrack-app/healthtrack/internal/features"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/metrics"
	"github.com/healthtrack-app/healthtrack/internal/session"
	"github.com/healthtrack-app/healthtrack/internal/store"
	"github.com/healthtrack-app/healthtrack/models"
)

// storeWarningMessage is shown to the user when the record could not be
// persisted. The computed prediction stays usable for the session.
const storeWarningMessage = "your result could not be saved; it remains available for this session"

// predictionService implements the full prediction pipeline: feature
// building, classification, persistence, attribution and session caching.
type predictionService struct {
	predictor   Predictor
	explainer   Explainer
	predictions store.PredictionRepository
	sessions    *session.Store
	logger      *logger.Logger
}

// NewPredictionService wires the pipeline stages together.
func NewPredictionService(predictor Predictor, explainer Explainer, predictions store.PredictionRepository, sessions *session.Store, logger *logger.Logger) PredictionService {
	return &predictionService{
		predictor:   predictor,
		explainer:   explainer,
		predictions: predictions,
		sessions:    sessions,
		logger:      logger,
	}
}

// Predict runs one submission through the pipeline.
//
// Validation failures surface as-is (they wrap features.ErrValidation).
// A persistence failure is downgraded to a warning on the response.
// An attribution failure leaves Contributions empty but keeps the prediction.
func (p *predictionService) Predict(ctx context.Context, userID string, input models.PredictionInput) (models.PredictionResponse, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	vector, err := features.Build(input)
	if err != nil {
		log.Err(err).Str("unique_id", userID).Msg("feature validation failed")
		return models.PredictionResponse{}, err
	}

	label, probability := p.predictor.Predict(vector)
	metrics.RecordPrediction(label)

	summary := fmt.Sprintf("The model predicts: %s with %.2f%% probability", label, probability*100)

	rec := models.PredictionRecord{
		UserID:      userID,
		Date:        time.Now().Format(time.DateOnly),
		Features:    vector,
		Prediction:  label,
		Probability: probability,
	}

	response := models.PredictionResponse{
		Prediction:  label,
		Probability: probability,
		Summary:     summary,
		Features:    vector,
	}

	if err = p.predictions.UpsertDaily(ctx, rec); err != nil {
		log.Err(err).Str("unique_id", userID).Msg("prediction record could not be saved")
		metrics.RecordStoreFailure()
		response.StoreWarning = storeWarningMessage
	}

	p.sessions.SetPredicted(userID, rec, summary)

	contributions, err := p.explainer.Explain(vector)
	if err != nil {
		log.Err(err).Str("unique_id", userID).Msg("attribution failed")
	} else {
		p.sessions.SetExplained(userID, contributions)
		response.Contributions = contributions
	}

	metrics.RecordPredictionLatency(time.Since(started).Seconds())

	return response, nil
}
