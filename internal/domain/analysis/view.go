package analysis

import (
	"fmt"
	"math"
	"sort"
)

// DemoModeNotice is shown with results synthesized by the local
// estimator while the analysis service is unreachable.
const DemoModeNotice = "Demonstration mode: the analysis service is unreachable, this result was estimated locally."

// Badge is a labeled, color-coded classification chip.
type Badge struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// FactorView is one row in a rendered factor list.
type FactorView struct {
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Impact         float64 `json:"impact"`
	Interpretation string  `json:"interpretation"`
}

// View is the display model built from a Result. It carries only
// formatting: gauge fill, badges, sorted factor lists, and notice text.
type View struct {
	Category       string  `json:"category"`
	CategoryBadge  Badge   `json:"category_badge"`
	GaugeFill      float64 `json:"gauge_fill"`
	ProbabilityPct string  `json:"probability_pct"`
	RiskScore      float64 `json:"risk_score"`
	Confidence     float64 `json:"confidence"`

	BMIBadge           Badge `json:"bmi_badge"`
	BloodPressureBadge Badge `json:"blood_pressure_badge"`

	RiskFactors          []FactorView `json:"risk_factors"`
	ProtectiveFactors    []FactorView `json:"protective_factors"`
	NoSignificantFactors bool         `json:"no_significant_factors"`

	GeneralInterpretation string   `json:"general_interpretation"`
	Recommendations       []string `json:"recommendations"`

	DemoMode   bool   `json:"demo_mode"`
	DemoNotice string `json:"demo_notice,omitempty"`
}

// NewView renders a result for display. Factor lists are sorted
// descending by absolute impact; the sort is stable so equal impacts
// keep their original order.
func NewView(res *Result) *View {
	v := &View{
		Category: res.Prediction.Category.Label(),
		CategoryBadge: Badge{
			Label: "Risk Category",
			Value: res.Prediction.Category.Label(),
			Color: res.Prediction.Category.Color(),
		},
		GaugeFill:      res.Prediction.Probability,
		ProbabilityPct: fmt.Sprintf("%.1f%%", res.Prediction.Probability*100),
		RiskScore:      res.Prediction.RiskScore,
		Confidence:     res.Prediction.Confidence,
		BMIBadge: Badge{
			Label: fmt.Sprintf("BMI %.1f", res.Prediction.BMI),
			Value: res.Prediction.BMIClassification,
			Color: classificationColor(res.Prediction.BMIClassification),
		},
		BloodPressureBadge: Badge{
			Label: "Blood Pressure",
			Value: res.Prediction.BloodPressureClassification,
			Color: classificationColor(res.Prediction.BloodPressureClassification),
		},
		RiskFactors:           sortedFactors(res.Explanations.RiskFactors),
		ProtectiveFactors:     sortedFactors(res.Explanations.ProtectiveFactors),
		GeneralInterpretation: res.Explanations.GeneralInterpretation,
		Recommendations:       res.Explanations.Recommendations,
		DemoMode:              res.DemoMode,
	}
	v.NoSignificantFactors = len(v.RiskFactors) == 0
	if v.DemoMode {
		v.DemoNotice = DemoModeNotice
	}
	return v
}

// classificationColor maps derived classification strings onto the same
// palette as the risk categories: green for normal findings, red for the
// severe bands, amber for everything in between.
func classificationColor(classification string) string {
	switch classification {
	case "Normal", "Peso normal":
		return RiskLow.Color()
	case "Obesity", "Stage 1 Hypertension", "Hipertensao Estagio 2", "Crise Hipertensiva",
		"Obesidade Grau I", "Obesidade Grau II", "Obesidade Grau III (Morbida)":
		return RiskHigh.Color()
	default:
		return RiskMedium.Color()
	}
}

func sortedFactors(factors []Factor) []FactorView {
	views := make([]FactorView, len(factors))
	for i, f := range factors {
		views[i] = FactorView{
			Name:           f.Name,
			Value:          f.Value,
			Impact:         f.Impact,
			Interpretation: f.Interpretation,
		}
	}
	sort.SliceStable(views, func(i, j int) bool {
		return math.Abs(views[i].Impact) > math.Abs(views[j].Impact)
	})
	return views
}
