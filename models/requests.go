package models

// LoginRequest is the body of POST /api/auth/login. Exactly one of the two
// identification modes must be used: name+email (creates the account on
// first use) or unique_id (existing accounts only).
type LoginRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	UniqueID string `json:"unique_id,omitempty"`
}

// PredictionInput carries the raw form answers for one risk assessment.
// Every field is a pointer so the builder can tell "absent" apart from a
// legitimate zero answer; an absent required field fails validation before
// any model work happens.
//
// Yes/No questions take the strings "Yes" or "No" (case-insensitive).
// BMI is never entered directly: it is derived from WeightKg and HeightM.
type PredictionInput struct {
	HighBP               *string `json:"high_bp"`
	HighChol             *string `json:"high_chol"`
	CholCheck            *string `json:"chol_check"`
	Smoker               *string `json:"smoker"`
	Stroke               *string `json:"stroke"`
	HeartDiseaseorAttack *string `json:"heart_disease_or_attack"`
	PhysActivity         *string `json:"phys_activity"`
	Fruits               *string `json:"fruits"`
	Veggies              *string `json:"veggies"`
	HvyAlcoholConsump    *string `json:"hvy_alcohol_consump"`
	AnyHealthcare        *string `json:"any_healthcare"`
	NoDocbcCost          *string `json:"no_doc_bc_cost"`
	DiffWalk             *string `json:"diff_walk"`

	// WeightKg and HeightM are the two raw measurements BMI is computed
	// from (weight / height²). A non-positive height yields BMI 0.
	WeightKg *float64 `json:"weight_kg"`
	HeightM  *float64 `json:"height_m"`

	// GenHlth is one of the general-health labels:
	// Excellent, Very Good, Good, Fair, Poor.
	GenHlth *string `json:"gen_hlth"`

	// MentHlthDays and PhysHlthDays count unhealthy days in the past 30.
	MentHlthDays *float64 `json:"ment_hlth_days"`
	PhysHlthDays *float64 `json:"phys_hlth_days"`

	// Sex is "Male" or "Female".
	Sex *string `json:"sex"`

	// AgeYears is the age in years; the builder buckets it into one of the
	// 13 ordinal age brackets.
	AgeYears *float64 `json:"age_years"`

	// Education is one of the enumerated education labels (see the
	// features package for the full set).
	Education *string `json:"education"`

	// IncomeUSD is the yearly income in dollars; the builder buckets it
	// into one of the 8 ordinal income brackets.
	IncomeUSD *float64 `json:"income_usd"`
}

// EmailReportRequest is the body of POST /api/dashboard/email.
type EmailReportRequest struct {
	Email string `json:"email"`
}
