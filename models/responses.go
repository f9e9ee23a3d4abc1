package models

// PredictionResponse is the result of one prediction run. Persistence and
// attribution failures never suppress the prediction itself: StoreWarning
// carries a user-facing warning when the record could not be saved, and
// Contributions may be empty when attribution failed.
type PredictionResponse struct {
	// Prediction is the categorical outcome label.
	Prediction string `json:"prediction"`

	// Probability is the model's confidence in the predicted class.
	Probability float64 `json:"probability"`

	// Summary is the user-facing one-line result, e.g.
	// "The model predicts: Diabetes Present with 71.20% probability".
	Summary string `json:"summary"`

	// Features echoes the vector the prediction was computed from.
	Features FeatureVector `json:"features"`

	// Contributions is the per-feature attribution list, sorted by
	// descending absolute value. Empty when attribution failed.
	Contributions []FeatureContribution `json:"contributions,omitempty"`

	// StoreWarning is set when the record could not be persisted; the
	// prediction above is still valid for the current session.
	StoreWarning string `json:"store_warning,omitempty"`
}

// NarrativeResponse carries the generated lifestyle advice text.
type NarrativeResponse struct {
	Narrative string `json:"narrative"`
}

// VersionResponse reports the running server build version.
type VersionResponse struct {
	Version string `json:"version"`
}
