package http

import (
	"net/http"

	"github.com/healthtrack-app/healthtrack/internal/utils"
	"github.com/healthtrack-app/healthtrack/models"
)

// DemoProfile is a prefilled intake form clients can offer as a starting
// point instead of entering every answer by hand.
type DemoProfile struct {
	Title string                 `json:"title"`
	Input models.PredictionInput `json:"input"`
}

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }

// demoProfilesList mirrors the three intake presets of the web form.
var demoProfilesList = []DemoProfile{
	{
		Title: "Sample Profile 1: Older Male with High BMI and Unhealthy Lifestyle",
		Input: models.PredictionInput{
			HighBP: strp("Yes"), HighChol: strp("Yes"), CholCheck: strp("No"),
			Smoker: strp("Yes"), Stroke: strp("Yes"), HeartDiseaseorAttack: strp("Yes"),
			PhysActivity: strp("No"), Fruits: strp("No"), Veggies: strp("No"),
			HvyAlcoholConsump: strp("Yes"), AnyHealthcare: strp("No"), NoDocbcCost: strp("Yes"),
			DiffWalk: strp("Yes"),
			WeightKg: floatp(107.2), HeightM: floatp(1.75),
			GenHlth:      strp("Poor"),
			MentHlthDays: floatp(20), PhysHlthDays: floatp(25),
			Sex: strp("Male"), AgeYears: floatp(65),
			Education: strp("Grades 9 through 11 (Some high school)"),
			IncomeUSD: floatp(12000),
		},
	},
	{
		Title: "Sample Profile 2: Younger Male with High BMI and Unhealthy Lifestyle",
		Input: models.PredictionInput{
			HighBP: strp("No"), HighChol: strp("Yes"), CholCheck: strp("Yes"),
			Smoker: strp("Yes"), Stroke: strp("No"), HeartDiseaseorAttack: strp("No"),
			PhysActivity: strp("No"), Fruits: strp("No"), Veggies: strp("No"),
			HvyAlcoholConsump: strp("Yes"), AnyHealthcare: strp("Yes"), NoDocbcCost: strp("No"),
			DiffWalk: strp("No"),
			WeightKg: floatp(103.7), HeightM: floatp(1.80),
			GenHlth:      strp("Fair"),
			MentHlthDays: floatp(15), PhysHlthDays: floatp(10),
			Sex: strp("Male"), AgeYears: floatp(25),
			Education: strp("Grade 12 or GED (High school graduate)"),
			IncomeUSD: floatp(30000),
		},
	},
	{
		Title: "Sample Profile 3: Older Under Educated Female with Healthy Diet",
		Input: models.PredictionInput{
			HighBP: strp("Yes"), HighChol: strp("No"), CholCheck: strp("Yes"),
			Smoker: strp("No"), Stroke: strp("No"), HeartDiseaseorAttack: strp("No"),
			PhysActivity: strp("Yes"), Fruits: strp("Yes"), Veggies: strp("Yes"),
			HvyAlcoholConsump: strp("No"), AnyHealthcare: strp("Yes"), NoDocbcCost: strp("No"),
			DiffWalk: strp("No"),
			WeightKg: floatp(56.3), HeightM: floatp(1.60),
			GenHlth:      strp("Very Good"),
			MentHlthDays: floatp(2), PhysHlthDays: floatp(3),
			Sex: strp("Female"), AgeYears: floatp(74),
			Education: strp("Never attended school or only kindergarten"),
			IncomeUSD: floatp(8000),
		},
	},
}

func (h *Handler) demoProfiles(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, demoProfilesList, http.StatusOK)
}
