package riskmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/models"
)

func newTestModel(t *testing.T, artifact Artifact) *Model {
	t.Helper()

	model, err := NewModel(writeArtifact(t, artifact), logger.Nop())
	require.NoError(t, err)
	return model
}

func TestModel_Predict(t *testing.T) {
	model := newTestModel(t, testArtifact())

	// BMI below the stump threshold lands in the left leaf [0.8, 0.2].
	low := models.FeatureVector{BMI: 25}
	label, probability := model.Predict(low)
	assert.Equal(t, models.PredictionAbsent, label)
	assert.InDelta(t, 0.8, probability, 1e-12)

	// BMI above lands in the right leaf [0.3, 0.7].
	high := models.FeatureVector{BMI: 35}
	label, probability = model.Predict(high)
	assert.Equal(t, models.PredictionPresent, label)
	assert.InDelta(t, 0.7, probability, 1e-12)
}

func TestModel_PredictDeterministic(t *testing.T) {
	model := newTestModel(t, testArtifact())
	vector := models.FeatureVector{BMI: 31.4, Age: 9, GenHlth: 4}

	label1, prob1 := model.Predict(vector)
	label2, prob2 := model.Predict(vector)

	assert.Equal(t, label1, label2)
	assert.Equal(t, prob1, prob2)
}

func TestModel_PredictProbabilityIsOfPredictedClass(t *testing.T) {
	model := newTestModel(t, testArtifact())

	// Whatever the label, the reported probability is the confidence in it,
	// so it can never drop below 0.5 for a two-class forest.
	for _, bmi := range []float64{0, 15, 29.9, 30.1, 50} {
		_, probability := model.Predict(models.FeatureVector{BMI: bmi})
		assert.GreaterOrEqual(t, probability, 0.5)
	}
}

func TestModel_Scale(t *testing.T) {
	artifact := testArtifact()
	artifact.Scaler.Mean[3] = 28
	artifact.Scaler.Scale[3] = 4
	model := newTestModel(t, artifact)

	scaled := model.Scale(models.FeatureVector{BMI: 36})
	require.Len(t, scaled, models.FeatureCount)
	assert.InDelta(t, 2.0, scaled[3], 1e-12)
	assert.InDelta(t, 0.0, scaled[0], 1e-12)
}

func TestScaler_Transform(t *testing.T) {
	s := Scaler{Mean: []float64{1, 2}, Scale: []float64{2, 0.5}}

	scaled := s.Transform([]float64{3, 1})
	assert.InDelta(t, 1.0, scaled[0], 1e-12)
	assert.InDelta(t, -2.0, scaled[1], 1e-12)
}

func TestTree_ExpectedValue(t *testing.T) {
	tree := testArtifact().Forest.Trees[0]

	// Cover-weighted mean of the leaves: (60*0.2 + 40*0.7) / 100.
	assert.InDelta(t, 0.4, tree.ExpectedValue(1), 1e-12)
	assert.InDelta(t, 0.6, tree.ExpectedValue(0), 1e-12)
}

func TestForest_PredictProbaAveragesTrees(t *testing.T) {
	forest := Forest{
		Classes: 2,
		Trees: []Tree{
			{
				ChildrenLeft:  []int{-1},
				ChildrenRight: []int{-1},
				Feature:       []int{-2},
				Threshold:     []float64{0},
				Value:         [][]float64{{0.9, 0.1}},
				NodeSamples:   []float64{10},
			},
			{
				ChildrenLeft:  []int{-1},
				ChildrenRight: []int{-1},
				Feature:       []int{-2},
				Threshold:     []float64{0},
				Value:         [][]float64{{0.5, 0.5}},
				NodeSamples:   []float64{10},
			},
		},
	}

	probs := forest.PredictProba(make([]float64, models.FeatureCount))
	assert.InDelta(t, 0.7, probs[0], 1e-12)
	assert.InDelta(t, 0.3, probs[1], 1e-12)
}
