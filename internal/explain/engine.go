// Package explain computes per-feature Shapley attributions for individual
// predictions using path-dependent TreeSHAP over the fitted forest. The
// engine shares the classifier with the risk-model adapter, so explanations
// always refer to the exact trees the prediction came from.
package explain

import (
	"fmt"
	"math"
	"sort"

	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/riskmodel"
	"github.com/healthtrack-app/healthtrack/models"
)

// positiveClass is the attribution column: contributions always explain the
// probability of the "risk present" class, regardless of the predicted label.
const positiveClass = 1

// Engine wraps the Shapley-value explainer over the fitted classifier.
// It is read-only after construction and safe for concurrent use.
type Engine struct {
	model  *riskmodel.Model
	logger *logger.Logger
}

// NewEngine constructs an attribution engine over the given model.
func NewEngine(model *riskmodel.Model, log *logger.Logger) *Engine {
	log.Debug().Msg("creating attribution engine")
	return &Engine{model: model, logger: log}
}

// Explain computes the signed per-feature contributions to the positive-class
// probability for one raw feature vector. The result holds exactly one entry
// per feature, sorted by descending absolute value so the caller can present
// the top contributing factors directly.
//
// A length mismatch between the attribution list and the vector wraps
// [ErrAttributionMismatch] and aborts the explanation; it never truncates.
func (e *Engine) Explain(vector models.FeatureVector) ([]models.FeatureContribution, error) {
	scaled := e.model.Scale(vector)
	forest := e.model.Forest()

	phi := make([]float64, models.FeatureCount)
	for _, tree := range forest.Trees {
		treeShap(tree, scaled, positiveClass, phi)
	}
	for i := range phi {
		phi[i] /= float64(len(forest.Trees))
	}

	contributions := make([]models.FeatureContribution, 0, len(phi))
	for i, value := range phi {
		name := models.FeatureNames[i]
		contributions = append(contributions, models.FeatureContribution{
			Feature:     name,
			Description: models.FeatureDescriptions[name],
			Value:       value,
		})
	}

	if len(contributions) != models.FeatureCount {
		return nil, fmt.Errorf("%w: got %d values for %d features",
			ErrAttributionMismatch, len(contributions), models.FeatureCount)
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return math.Abs(contributions[i].Value) > math.Abs(contributions[j].Value)
	})

	return contributions, nil
}
