// Package analysis implements the cardiovascular risk analysis workflow:
// the client for the remote analysis service, the local fallback
// estimator used when that service is unreachable, the session-scoped
// result slot, and the display view model built from a result.
package analysis

import "time"

// RiskCategory is the primary classification surfaced to the user. The
// string values are the analysis service wire values.
type RiskCategory string

const (
	RiskLow    RiskCategory = "Baixo Risco"
	RiskMedium RiskCategory = "Medio Risco"
	RiskHigh   RiskCategory = "Alto Risco"
)

// ParseCategory normalizes a wire category string. Older service
// versions emit the accented label for the medium band.
func ParseCategory(s string) RiskCategory {
	if s == "Médio Risco" {
		return RiskMedium
	}
	return RiskCategory(s)
}

// Label returns the English display label for the category.
func (c RiskCategory) Label() string {
	switch c {
	case RiskLow:
		return "Low Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskHigh:
		return "High Risk"
	}
	return string(c)
}

// Color returns the badge color hex code for the category.
func (c RiskCategory) Color() string {
	switch c {
	case RiskHigh:
		return "#dc3545"
	case RiskMedium:
		return "#ffc107"
	default:
		return "#28a745"
	}
}

// Prediction is the risk assessment produced per submission, either by
// the remote service or by the local estimator.
type Prediction struct {
	Category                    RiskCategory `json:"categoria_risco"`
	Probability                 float64      `json:"probabilidade"`
	RiskScore                   float64      `json:"score_risco"`
	Confidence                  float64      `json:"confianca"`
	Timestamp                   string       `json:"timestamp"`
	BMI                         float64      `json:"bmi"`
	BMIClassification           string       `json:"classificacao_bmi"`
	BloodPressureClassification string       `json:"classificacao_pressao"`
}

// Factor categories on the wire.
const (
	FactorIncreaseRisk = "increase_risk"
	FactorDecreaseRisk = "decrease_risk"
)

// Factor is a single feature contribution in the explanation set.
type Factor struct {
	Name           string  `json:"fator"`
	Value          float64 `json:"valor"`
	Impact         float64 `json:"impacto"`
	Interpretation string  `json:"interpretacao"`
	Category       string  `json:"categoria"`
}

// Explanations accompanies a prediction: the contributing factors, a
// general interpretation, and recommended actions.
type Explanations struct {
	RiskFactors           []Factor `json:"fatores_risco"`
	ProtectiveFactors     []Factor `json:"fatores_protecao"`
	GeneralInterpretation string   `json:"interpretacao_geral"`
	Recommendations       []string `json:"recomendacoes"`
}

// Result is the complete outcome of one analysis. DemoMode marks results
// synthesized by the local estimator when the remote service could not
// be reached.
type Result struct {
	Prediction   Prediction   `json:"predicao"`
	Explanations Explanations `json:"explicacoes"`
	DemoMode     bool         `json:"demo_mode,omitempty"`
}

// ServiceHealth is the remote analysis service's liveness report.
type ServiceHealth struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Model       string `json:"modelo_ia"`
}

// now is stubbed in tests so estimator output is fully deterministic.
var now = time.Now
