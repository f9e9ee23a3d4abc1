// Package riskmodel wraps the pre-trained diabetes classifier and its input
// scaler. The artifact is loaded once at process start and is immutable for
// the process lifetime, so a single *Model is safely shared across requests.
package riskmodel

import (
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/models"
)

// Model is the risk-model adapter: it owns the fitted scaler and forest and
// exposes prediction over raw (unscaled) feature vectors. All state is
// read-only after construction.
type Model struct {
	artifact *Artifact
	logger   *logger.Logger
}

// NewModel loads the artifact at path and returns a ready adapter.
// A load or validation failure wraps [ErrModelUnavailable]; the caller must
// treat it as fatal.
func NewModel(path string, log *logger.Logger) (*Model, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("path", path).
		Int("trees", len(artifact.Forest.Trees)).
		Int("features", len(artifact.Features)).
		Msg("model artifact loaded")

	return &Model{artifact: artifact, logger: log}, nil
}

// Forest exposes the fitted classifier for the attribution engine, which
// computes Shapley values against the same trees predictions come from.
func (m *Model) Forest() Forest {
	return m.artifact.Forest
}

// Scale applies the fitted scaler to a raw feature vector.
func (m *Model) Scale(vector models.FeatureVector) []float64 {
	return m.artifact.Scaler.Transform(vector.Values())
}

// Predict scales the raw vector, runs the forest, and returns the argmax
// class label together with the probability of that predicted class — the
// confidence in the displayed label, not the raw positive-class likelihood.
//
// Given the immutable artifact, Predict is deterministic: identical input
// always yields the identical label and probability.
func (m *Model) Predict(vector models.FeatureVector) (label string, probability float64) {
	probs := m.artifact.Forest.PredictProba(m.Scale(vector))

	if probs[1] > probs[0] {
		return models.PredictionPresent, probs[1]
	}
	return models.PredictionAbsent, probs[0]
}
