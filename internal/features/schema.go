package features

// Label sets for the enumerated questions. The integer codes are the ones
// the classifier was fitted with; changing them silently breaks inference.

// GenHlthCodes maps the general-health rating labels to their ordinal codes
// (1 = Excellent ... 5 = Poor).
var GenHlthCodes = map[string]float64{
	"Excellent": 1,
	"Very Good": 2,
	"Good":      3,
	"Fair":      4,
	"Poor":      5,
}

// EducationCodes maps the education-level labels to their ordinal codes
// (1 = never attended ... 6 = college graduate).
var EducationCodes = map[string]float64{
	"Never attended school or only kindergarten":                  1,
	"Grades 1 through 8 (Elementary)":                             2,
	"Grades 9 through 11 (Some high school)":                      3,
	"Grade 12 or GED (High school graduate)":                      4,
	"College 1 year to 3 years (Some college or technical school)": 5,
	"College 4 years or more (College graduate)":                  6,
}

// AgeBracket buckets an age in years into one of the 13 ordinal age codes.
// Brackets are five years wide and inclusive on the low end: ≤24 → 1,
// 25–29 → 2, ..., 75–79 → 12, ≥80 → 13.
func AgeBracket(years float64) float64 {
	switch {
	case years <= 24:
		return 1
	case years <= 29:
		return 2
	case years <= 34:
		return 3
	case years <= 39:
		return 4
	case years <= 44:
		return 5
	case years <= 49:
		return 6
	case years <= 54:
		return 7
	case years <= 59:
		return 8
	case years <= 64:
		return 9
	case years <= 69:
		return 10
	case years <= 74:
		return 11
	case years <= 79:
		return 12
	default:
		return 13
	}
}

// IncomeBracket buckets a yearly income in dollars into one of the 8 ordinal
// income codes: <10k → 1, <15k → 2, <20k → 3, <25k → 4, <35k → 5, <50k → 6,
// <75k → 7, ≥75k → 8.
func IncomeBracket(dollars float64) float64 {
	switch {
	case dollars < 10000:
		return 1
	case dollars < 15000:
		return 2
	case dollars < 20000:
		return 3
	case dollars < 25000:
		return 4
	case dollars < 35000:
		return 5
	case dollars < 50000:
		return 6
	case dollars < 75000:
		return 7
	default:
		return 8
	}
}

// ComputeBMI derives the Body Mass Index from a weight in kilograms and a
// height in meters. A non-positive height yields 0 — degenerate but defined,
// matching the behavior of the original intake form.
func ComputeBMI(weightKg, heightM float64) float64 {
	if heightM <= 0 {
		return 0
	}
	return weightKg / (heightM * heightM)
}
