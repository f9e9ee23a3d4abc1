package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-app/healthtrack/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// validInput returns a complete submission that passes validation. Tests
// mutate single fields to exercise individual rejections.
func validInput() models.PredictionInput {
	return models.PredictionInput{
		HighBP:               strPtr("Yes"),
		HighChol:             strPtr("No"),
		CholCheck:            strPtr("Yes"),
		Smoker:               strPtr("No"),
		Stroke:               strPtr("No"),
		HeartDiseaseorAttack: strPtr("No"),
		PhysActivity:         strPtr("Yes"),
		Fruits:               strPtr("Yes"),
		Veggies:              strPtr("Yes"),
		HvyAlcoholConsump:    strPtr("No"),
		AnyHealthcare:        strPtr("Yes"),
		NoDocbcCost:          strPtr("No"),
		DiffWalk:             strPtr("No"),
		WeightKg:             floatPtr(70),
		HeightM:              floatPtr(1.75),
		GenHlth:              strPtr("Good"),
		MentHlthDays:         floatPtr(2),
		PhysHlthDays:         floatPtr(0),
		Sex:                  strPtr("Male"),
		AgeYears:             floatPtr(42),
		Education:            strPtr("Grade 12 or GED (High school graduate)"),
		IncomeUSD:            floatPtr(30000),
	}
}

func TestBuild_CompleteVector(t *testing.T) {
	vector, err := Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, 1.0, vector.HighBP)
	assert.Equal(t, 0.0, vector.HighChol)
	assert.Equal(t, 1.0, vector.CholCheck)
	assert.Equal(t, 0.0, vector.DiffWalk)
	assert.InDelta(t, 22.857, vector.BMI, 0.001)
	assert.Equal(t, 3.0, vector.GenHlth)
	assert.Equal(t, 2.0, vector.MentHlth)
	assert.Equal(t, 0.0, vector.PhysHlth)
	assert.Equal(t, 1.0, vector.Sex)
	assert.Equal(t, 5.0, vector.Age, "42 years falls in bracket 5")
	assert.Equal(t, 4.0, vector.Education)
	assert.Equal(t, 5.0, vector.Income, "$30000 falls in bracket 5")

	values := vector.Values()
	require.Len(t, values, models.FeatureCount)
	assert.Equal(t, vector.HighBP, values[0])
	assert.Equal(t, vector.BMI, values[3])
	assert.Equal(t, vector.GenHlth, values[13])
	assert.Equal(t, vector.Income, values[20])
}

func TestBuild_YesNoCaseInsensitive(t *testing.T) {
	input := validInput()
	input.HighBP = strPtr(" yes ")
	input.Smoker = strPtr("NO")

	vector, err := Build(input)
	require.NoError(t, err)
	assert.Equal(t, 1.0, vector.HighBP)
	assert.Equal(t, 0.0, vector.Smoker)
}

func TestBuild_MissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.PredictionInput)
	}{
		{"binary answer", func(in *models.PredictionInput) { in.Stroke = nil }},
		{"weight", func(in *models.PredictionInput) { in.WeightKg = nil }},
		{"height", func(in *models.PredictionInput) { in.HeightM = nil }},
		{"general health", func(in *models.PredictionInput) { in.GenHlth = nil }},
		{"mental health days", func(in *models.PredictionInput) { in.MentHlthDays = nil }},
		{"sex", func(in *models.PredictionInput) { in.Sex = nil }},
		{"age", func(in *models.PredictionInput) { in.AgeYears = nil }},
		{"education", func(in *models.PredictionInput) { in.Education = nil }},
		{"income", func(in *models.PredictionInput) { in.IncomeUSD = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			vector, err := Build(input)
			require.ErrorIs(t, err, ErrValidation)
			require.ErrorIs(t, err, ErrMissingField)
			assert.Equal(t, models.FeatureVector{}, vector, "no partial vector on failure")
		})
	}
}

func TestBuild_BadAnswer(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.PredictionInput)
	}{
		{"not a yes/no answer", func(in *models.PredictionInput) { in.Fruits = strPtr("maybe") }},
		{"negative weight", func(in *models.PredictionInput) { in.WeightKg = floatPtr(-1) }},
		{"unknown general health label", func(in *models.PredictionInput) { in.GenHlth = strPtr("Okay") }},
		{"mental health days over 30", func(in *models.PredictionInput) { in.MentHlthDays = floatPtr(31) }},
		{"negative physical health days", func(in *models.PredictionInput) { in.PhysHlthDays = floatPtr(-1) }},
		{"unknown sex", func(in *models.PredictionInput) { in.Sex = strPtr("unspecified") }},
		{"age over 120", func(in *models.PredictionInput) { in.AgeYears = floatPtr(121) }},
		{"unknown education label", func(in *models.PredictionInput) { in.Education = strPtr("PhD") }},
		{"negative income", func(in *models.PredictionInput) { in.IncomeUSD = floatPtr(-500) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := Build(input)
			require.ErrorIs(t, err, ErrValidation)
			require.ErrorIs(t, err, ErrBadAnswer)
		})
	}
}

func TestBuild_FemaleSex(t *testing.T) {
	input := validInput()
	input.Sex = strPtr("female")

	vector, err := Build(input)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vector.Sex)
}

func TestAgeBracket(t *testing.T) {
	tests := []struct {
		years float64
		want  float64
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{30, 3},
		{44, 5},
		{45, 6},
		{64, 9},
		{79, 12},
		{80, 13},
		{101, 13},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, AgeBracket(tt.years), "AgeBracket(%v)", tt.years)
	}
}

func TestIncomeBracket(t *testing.T) {
	tests := []struct {
		dollars float64
		want    float64
	}{
		{0, 1},
		{9999, 1},
		{10000, 2},
		{19999, 3},
		{25000, 5},
		{34999, 5},
		{35000, 6},
		{74999, 7},
		{75000, 8},
		{250000, 8},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, IncomeBracket(tt.dollars), "IncomeBracket(%v)", tt.dollars)
	}
}

func TestComputeBMI(t *testing.T) {
	assert.InDelta(t, 22.857, ComputeBMI(70, 1.75), 0.001)
	assert.InDelta(t, 35.918, ComputeBMI(110, 1.75), 0.001)

	// degenerate but defined
	assert.Equal(t, 0.0, ComputeBMI(70, 0))
	assert.Equal(t, 0.0, ComputeBMI(70, -1))
}
