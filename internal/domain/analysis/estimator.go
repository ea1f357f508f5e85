package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/cardiocare/cardiocare/internal/domain/patient"
)

// Estimator constants. The confidence is fixed because the local
// heuristic has no per-patient uncertainty model.
const (
	estimatorConfidence = 0.85
	factorImpactFloor   = 0.01
)

// Fixed per-unit impact coefficients for the explanation factors.
const (
	systolicImpactPerUnit = 0.002 // per mmHg above 120
	ageImpactPerUnit      = 0.005 // per year above 45
	bmiImpactPerUnit      = 0.01  // per BMI point above 25
	lowHeartRateImpact    = -0.05
)

var recommendationsByCategory = map[RiskCategory][]string{
	RiskHigh: {
		"Seek cardiology evaluation as soon as possible, including ECG and cardiac markers",
		"Strict blood pressure monitoring with optimized medication",
		"Immediate lifestyle adjustments: stop smoking, restrict sodium, supervised activity only",
	},
	RiskMedium: {
		"Schedule a medical review of cardiovascular risk factors within the next weeks",
		"Adopt regular aerobic exercise and a heart-healthy diet",
		"Monitor blood pressure and weight at home and keep a log for your physician",
	},
	RiskLow: {
		"Maintain healthy habits and routine preventive checkups",
		"Keep regular physical activity and a balanced diet",
		"Recheck blood pressure and cholesterol at your next annual visit",
	},
}

var interpretationByCategory = map[RiskCategory]string{
	RiskHigh:   "The patient presents multiple risk factors that significantly raise the probability of cardiovascular events. Immediate cardiology evaluation and intensive therapeutic intervention are recommended.",
	RiskMedium: "The patient presents some risk factors that require regular monitoring and preventive intervention. Lifestyle changes and medical follow-up are essential.",
	RiskLow:    "The patient presents low cardiovascular risk at this time, but should maintain preventive habits and regular checkups for continuous monitoring.",
}

// Estimate computes a local approximation of the remote analysis. It is
// pure and deterministic apart from the result timestamp: identical
// records always yield identical scores, categories, probabilities, and
// factor lists. It is used only when the remote service is unreachable,
// and its output is marked as demonstration mode.
func Estimate(rec *patient.Record) *Result {
	bmi := rec.BMI()

	// Additive score with else-if bands: when two bands of the same
	// factor could apply, only the higher one contributes.
	score := 0.0
	switch {
	case rec.Age > 60:
		score += 0.30
	case rec.Age > 45:
		score += 0.15
	}
	switch {
	case rec.SystolicBP > 140:
		score += 0.25
	case rec.SystolicBP > 120:
		score += 0.10
	}
	switch {
	case bmi > 30:
		score += 0.20
	case bmi > 25:
		score += 0.10
	}
	if rec.ChestPain {
		score += 0.15
	}
	if rec.Fatigue {
		score += 0.10
	}
	if rec.ShortnessOfBreath {
		score += 0.12
	}

	var category RiskCategory
	switch {
	case score > 0.6:
		category = RiskHigh
	case score > 0.3:
		category = RiskMedium
	default:
		category = RiskLow
	}

	probability := math.Min(score+0.10, 0.95)

	return &Result{
		Prediction: Prediction{
			Category:                    category,
			Probability:                 probability,
			RiskScore:                   score,
			Confidence:                  estimatorConfidence,
			Timestamp:                   now().Format(time.RFC3339),
			BMI:                         bmi,
			BMIClassification:           classifyBMI(bmi),
			BloodPressureClassification: classifyBloodPressure(rec.SystolicBP),
		},
		Explanations: Explanations{
			RiskFactors:           riskFactors(rec, bmi),
			ProtectiveFactors:     protectiveFactors(rec),
			GeneralInterpretation: interpretationByCategory[category],
			Recommendations:       recommendationsByCategory[category],
		},
		DemoMode: true,
	}
}

func classifyBMI(bmi float64) string {
	switch {
	case bmi > 30:
		return "Obesity"
	case bmi > 25:
		return "Overweight"
	default:
		return "Normal"
	}
}

func classifyBloodPressure(systolic int) string {
	if systolic > 140 {
		return "Stage 1 Hypertension"
	}
	return "Normal"
}

// riskFactors builds the graded factor contributions for systolic
// pressure, age, and BMI. Entries at or below the impact floor are
// dropped; an empty list means no significant factors, not an error.
func riskFactors(rec *patient.Record, bmi float64) []Factor {
	var candidates []Factor

	if rec.SystolicBP > 120 {
		candidates = append(candidates, Factor{
			Name:           "Systolic Pressure",
			Value:          float64(rec.SystolicBP),
			Impact:         float64(rec.SystolicBP-120) * systolicImpactPerUnit,
			Interpretation: fmt.Sprintf("Systolic pressure of %d mmHg raises cardiovascular risk", rec.SystolicBP),
			Category:       FactorIncreaseRisk,
		})
	}
	if rec.Age > 45 {
		candidates = append(candidates, Factor{
			Name:           "Age",
			Value:          float64(rec.Age),
			Impact:         float64(rec.Age-45) * ageImpactPerUnit,
			Interpretation: fmt.Sprintf("Age of %d years raises cardiovascular risk", rec.Age),
			Category:       FactorIncreaseRisk,
		})
	}
	if bmi > 25 {
		candidates = append(candidates, Factor{
			Name:           "BMI",
			Value:          round2(bmi),
			Impact:         (bmi - 25) * bmiImpactPerUnit,
			Interpretation: fmt.Sprintf("BMI of %.1f indicates excess weight and raises risk", bmi),
			Category:       FactorIncreaseRisk,
		})
	}

	factors := make([]Factor, 0, len(candidates))
	for _, f := range candidates {
		if f.Impact > factorImpactFloor {
			factors = append(factors, f)
		}
	}
	return factors
}

func protectiveFactors(rec *patient.Record) []Factor {
	if rec.HeartRate >= 80 {
		return nil
	}
	return []Factor{{
		Name:           "Resting Heart Rate",
		Value:          float64(rec.HeartRate),
		Impact:         lowHeartRateImpact,
		Interpretation: fmt.Sprintf("Resting heart rate of %d bpm is a protective factor", rec.HeartRate),
		Category:       FactorDecreaseRisk,
	}}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
