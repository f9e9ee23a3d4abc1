// Package features turns free-form user answers into the fixed-order numeric
// vector the classifier expects. All derivations live here: BMI from raw
// measurements, age and income bucketing, and label-to-code mapping for the
// enumerated questions. The builder rejects incomplete or out-of-range input
// before anything reaches the model.
package features

import (
	"fmt"
	"strings"

	"github.com/healthtrack-app/healthtrack/models"
)

// Build validates the raw answers and produces a complete
// [models.FeatureVector] in the canonical schema order.
//
// Every required answer must be present; the first missing or out-of-range
// field aborts the build with an error wrapping [ErrValidation]. No partial
// vector is ever returned.
func Build(in models.PredictionInput) (models.FeatureVector, error) {
	var v models.FeatureVector

	binary := []struct {
		name  string
		value *string
		dst   *float64
	}{
		{"high_bp", in.HighBP, &v.HighBP},
		{"high_chol", in.HighChol, &v.HighChol},
		{"chol_check", in.CholCheck, &v.CholCheck},
		{"smoker", in.Smoker, &v.Smoker},
		{"stroke", in.Stroke, &v.Stroke},
		{"heart_disease_or_attack", in.HeartDiseaseorAttack, &v.HeartDiseaseorAttack},
		{"phys_activity", in.PhysActivity, &v.PhysActivity},
		{"fruits", in.Fruits, &v.Fruits},
		{"veggies", in.Veggies, &v.Veggies},
		{"hvy_alcohol_consump", in.HvyAlcoholConsump, &v.HvyAlcoholConsump},
		{"any_healthcare", in.AnyHealthcare, &v.AnyHealthcare},
		{"no_doc_bc_cost", in.NoDocbcCost, &v.NoDocbcCost},
		{"diff_walk", in.DiffWalk, &v.DiffWalk},
	}
	for _, b := range binary {
		if b.value == nil {
			return models.FeatureVector{}, missing(b.name)
		}
		flag, err := parseYesNo(b.name, *b.value)
		if err != nil {
			return models.FeatureVector{}, err
		}
		*b.dst = flag
	}

	if in.WeightKg == nil {
		return models.FeatureVector{}, missing("weight_kg")
	}
	if in.HeightM == nil {
		return models.FeatureVector{}, missing("height_m")
	}
	if *in.WeightKg < 0 {
		return models.FeatureVector{}, outOfRange("weight_kg", *in.WeightKg)
	}
	v.BMI = ComputeBMI(*in.WeightKg, *in.HeightM)

	if in.GenHlth == nil {
		return models.FeatureVector{}, missing("gen_hlth")
	}
	genHlth, ok := GenHlthCodes[*in.GenHlth]
	if !ok {
		return models.FeatureVector{}, outOfRange("gen_hlth", *in.GenHlth)
	}
	v.GenHlth = genHlth

	if in.MentHlthDays == nil {
		return models.FeatureVector{}, missing("ment_hlth_days")
	}
	if *in.MentHlthDays < 0 || *in.MentHlthDays > 30 {
		return models.FeatureVector{}, outOfRange("ment_hlth_days", *in.MentHlthDays)
	}
	v.MentHlth = *in.MentHlthDays

	if in.PhysHlthDays == nil {
		return models.FeatureVector{}, missing("phys_hlth_days")
	}
	if *in.PhysHlthDays < 0 || *in.PhysHlthDays > 30 {
		return models.FeatureVector{}, outOfRange("phys_hlth_days", *in.PhysHlthDays)
	}
	v.PhysHlth = *in.PhysHlthDays

	if in.Sex == nil {
		return models.FeatureVector{}, missing("sex")
	}
	switch strings.ToLower(strings.TrimSpace(*in.Sex)) {
	case "male":
		v.Sex = 1
	case "female":
		v.Sex = 0
	default:
		return models.FeatureVector{}, outOfRange("sex", *in.Sex)
	}

	if in.AgeYears == nil {
		return models.FeatureVector{}, missing("age_years")
	}
	if *in.AgeYears < 0 || *in.AgeYears > 120 {
		return models.FeatureVector{}, outOfRange("age_years", *in.AgeYears)
	}
	v.Age = AgeBracket(*in.AgeYears)

	if in.Education == nil {
		return models.FeatureVector{}, missing("education")
	}
	education, ok := EducationCodes[*in.Education]
	if !ok {
		return models.FeatureVector{}, outOfRange("education", *in.Education)
	}
	v.Education = education

	if in.IncomeUSD == nil {
		return models.FeatureVector{}, missing("income_usd")
	}
	if *in.IncomeUSD < 0 {
		return models.FeatureVector{}, outOfRange("income_usd", *in.IncomeUSD)
	}
	v.Income = IncomeBracket(*in.IncomeUSD)

	return v, nil
}

func parseYesNo(field, answer string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes":
		return 1, nil
	case "no":
		return 0, nil
	default:
		return 0, outOfRange(field, answer)
	}
}

func missing(field string) error {
	return fmt.Errorf("%w: %w: %q", ErrValidation, ErrMissingField, field)
}

func outOfRange(field string, value any) error {
	return fmt.Errorf("%w: %w: field %q value %v", ErrValidation, ErrBadAnswer, field, value)
}
