// SPDX-License-Identifier: Apache-2.0

package models

// FeatureCount is the width of the classifier's input schema.
const FeatureCount = 21

// FeatureNames is the canonical column order of the classifier's input. The
// scaler, the forest and every stored record all refer to this order; it must
// never be reshuffled without retraining the model.
var FeatureNames = [FeatureCount]string{
	"HighBP",
	"HighChol",
	"CholCheck",
	"BMI",
	"Smoker",
	"Stroke",
	"HeartDiseaseorAttack",
	"PhysActivity",
	"Fruits",
	"Veggies",
	"HvyAlcoholConsump",
	"AnyHealthcare",
	"NoDocbcCost",
	"GenHlth",
	"MentHlth",
	"PhysHlth",
	"DiffWalk",
	"Sex",
	"Age",
	"Education",
	"Income",
}

// FeatureDescriptions maps each schema column to the human-readable phrasing
// used in narratives and reports. Narrative prompts must use these, never the
// raw column names.
var FeatureDescriptions = map[string]string{
	"HighBP":               "High blood pressure",
	"HighChol":             "High cholesterol",
	"CholCheck":            "Cholesterol check within the past five years",
	"BMI":                  "Body Mass Index",
	"Smoker":               "Has smoked at least 100 cigarettes in their life",
	"Stroke":               "History of stroke",
	"HeartDiseaseorAttack": "History of coronary heart disease or heart attack",
	"PhysActivity":         "Physical activity in the past 30 days",
	"Fruits":               "Eats fruit at least once per day",
	"Veggies":              "Eats vegetables at least once per day",
	"HvyAlcoholConsump":    "Heavy alcohol consumption",
	"AnyHealthcare":        "Has any kind of health care coverage",
	"NoDocbcCost":          "Skipped a doctor visit because of cost in the past year",
	"GenHlth":              "Self-reported general health (1 excellent to 5 poor)",
	"MentHlth":             "Days of poor mental health in the past 30 days",
	"PhysHlth":             "Days of physical illness or injury in the past 30 days",
	"DiffWalk":             "Serious difficulty walking or climbing stairs",
	"Sex":                  "Sex",
	"Age":                  "Age bracket (1 youngest to 13 oldest)",
	"Education":            "Education level (1 lowest to 6 highest)",
	"Income":               "Income bracket (1 lowest to 8 highest)",
}

// FeatureVector is one complete, validated model input in the canonical
// schema. All values are already encoded: binary answers are 0/1, the ordinal
// questions carry their trained codes, and BMI is derived, never entered.
type FeatureVector struct {
	HighBP               float64 `json:"HighBP"`
	HighChol             float64 `json:"HighChol"`
	CholCheck            float64 `json:"CholCheck"`
	BMI                  float64 `json:"BMI"`
	Smoker               float64 `json:"Smoker"`
	Stroke               float64 `json:"Stroke"`
	HeartDiseaseorAttack float64 `json:"HeartDiseaseorAttack"`
	PhysActivity         float64 `json:"PhysActivity"`
	Fruits               float64 `json:"Fruits"`
	Veggies              float64 `json:"Veggies"`
	HvyAlcoholConsump    float64 `json:"HvyAlcoholConsump"`
	AnyHealthcare        float64 `json:"AnyHealthcare"`
	NoDocbcCost          float64 `json:"NoDocbcCost"`
	GenHlth              float64 `json:"GenHlth"`
	MentHlth             float64 `json:"MentHlth"`
	PhysHlth             float64 `json:"PhysHlth"`
	DiffWalk             float64 `json:"DiffWalk"`
	Sex                  float64 `json:"Sex"`
	Age                  float64 `json:"Age"`
	Education            float64 `json:"Education"`
	Income               float64 `json:"Income"`
}

// Values returns the vector as a slice in [FeatureNames] order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.HighBP,
		v.HighChol,
		v.CholCheck,
		v.BMI,
		v.Smoker,
		v.Stroke,
		v.HeartDiseaseorAttack,
		v.PhysActivity,
		v.Fruits,
		v.Veggies,
		v.HvyAlcoholConsump,
		v.AnyHealthcare,
		v.NoDocbcCost,
		v.GenHlth,
		v.MentHlth,
		v.PhysHlth,
		v.DiffWalk,
		v.Sex,
		v.Age,
		v.Education,
		v.Income,
	}
}

// VectorFromValues rebuilds a FeatureVector from a slice in [FeatureNames]
// order. The slice must hold exactly [FeatureCount] values.
func VectorFromValues(values []float64) FeatureVector {
	return FeatureVector{
		HighBP:               values[0],
		HighChol:             values[1],
		CholCheck:            values[2],
		BMI:                  values[3],
		Smoker:               values[4],
		Stroke:               values[5],
		HeartDiseaseorAttack: values[6],
		PhysActivity:         values[7],
		Fruits:               values[8],
		Veggies:              values[9],
		HvyAlcoholConsump:    values[10],
		AnyHealthcare:        values[11],
		NoDocbcCost:          values[12],
		GenHlth:              values[13],
		MentHlth:             values[14],
		PhysHlth:             values[15],
		DiffWalk:             values[16],
		Sex:                  values[17],
		Age:                  values[18],
		Education:            values[19],
		Income:               values[20],
	}
}

// FeatureContribution is one feature's signed Shapley contribution to the
// positive-class probability of a single prediction.
type FeatureContribution struct {
	// Feature is the schema column name.
	Feature string `json:"feature"`

	// Description is the human-readable phrasing of the feature.
	Description string `json:"description"`

	// Value is the signed contribution; positive values push the risk
	// estimate up.
	Value float64 `json:"value"`
}
