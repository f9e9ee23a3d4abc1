package models

// Prediction labels. The classifier is binary; Probability always refers to
// the class named in the Prediction field, not to the positive class.
const (
	PredictionPresent = "Diabetes Present"
	PredictionAbsent  = "No Diabetes Present"
)

// PredictionRecord is one persisted risk assessment. Records are keyed by
// (UserID, Date): the first prediction of a calendar day creates the record,
// any later prediction the same day overwrites it in place. Records are never
// deleted by the system.
type PredictionRecord struct {
	// ID is the internal database identifier.
	ID int64 `json:"-"`

	// UserID is the owning user's public unique_id.
	UserID string `json:"user_id"`

	// Date is the calendar day of the assessment in YYYY-MM-DD form.
	Date string `json:"date"`

	// Features is the full input vector the prediction was computed from.
	Features FeatureVector `json:"features"`

	// Prediction is the categorical outcome, one of [PredictionPresent]
	// or [PredictionAbsent].
	Prediction string `json:"prediction"`

	// Probability is the model's confidence in the predicted class,
	// in [0, 1].
	Probability float64 `json:"probability"`
}

// TableName returns the name of the database table
// associated with the PredictionRecord model.
func (p PredictionRecord) TableName() string {
	return "predictions"
}

// DashboardUser is one row of the dashboard user picker: a user who has at
// least one stored prediction, with the demographics of their latest record.
type DashboardUser struct {
	UniqueID  string  `json:"unique_id"`
	Email     string  `json:"email"`
	Sex       float64 `json:"sex"`
	Age       float64 `json:"age"`
	Education float64 `json:"education"`
}
