// Package patient holds the shared intake data model: the patient record
// submitted by the intake form, its derived measures, and the clinical
// bounds every submission must satisfy before it is sent for analysis.
package patient

// Gender values accepted by the analysis service.
const (
	GenderMale   = "Masculino"
	GenderFemale = "Feminino"
)

// BloodTypes lists the eight accepted blood type values.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Record is a single intake submission. JSON field names follow the
// analysis service wire vocabulary, so the same struct is bound from the
// intake form and sent upstream unchanged. BMI is always derived from
// weight and height, never entered directly.
type Record struct {
	// Demographics
	Age       int    `json:"idade"`
	Gender    string `json:"genero"`
	BloodType string `json:"tipo_sanguineo"`

	// Vitals
	SystolicBP  int `json:"pressao_sistolica"`
	DiastolicBP int `json:"pressao_diastolica"`
	HeartRate   int `json:"freq_cardiaca"`

	// Anthropometrics
	Weight float64 `json:"peso"`   // kg
	Height float64 `json:"altura"` // m

	// Labs
	Cholesterol int `json:"colesterol"` // mg/dL
	Glucose     int `json:"glicose"`    // mg/dL

	// History
	MedicationCount int `json:"num_medicamentos"`
	AnnualVisits    int `json:"visitas_anuais"`

	// Symptoms
	ChestPain         bool `json:"dor_peito"`
	ShortnessOfBreath bool `json:"falta_ar"`
	Fatigue           bool `json:"fadiga"`
	Dizziness         bool `json:"tontura"`
}

// BMI returns weight / height². Callers must validate the record first;
// a zero height would divide by zero.
func (r *Record) BMI() float64 {
	return r.Weight / (r.Height * r.Height)
}
