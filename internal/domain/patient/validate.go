package patient

import (
	"fmt"
	"strings"
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field error found in a record so the
// intake form can surface them inline. A record that fails validation is
// never sent to the analysis service.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid patient record: " + strings.Join(msgs, "; ")
}

// Validate checks every field of the record against its clinical bounds.
// It returns nil when the record is acceptable, or a *ValidationError
// listing all violations.
func (r *Record) Validate() error {
	var fields []FieldError

	add := func(field, format string, args ...interface{}) {
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if r.Age < 18 || r.Age > 120 {
		add("idade", "must be between 18 and 120 years, got %d", r.Age)
	}
	if r.Gender != GenderMale && r.Gender != GenderFemale {
		add("genero", "must be %q or %q", GenderMale, GenderFemale)
	}
	if !validBloodType(r.BloodType) {
		add("tipo_sanguineo", "must be one of %s", strings.Join(BloodTypes, ", "))
	}
	if r.SystolicBP < 60 || r.SystolicBP > 300 {
		add("pressao_sistolica", "must be between 60 and 300 mmHg, got %d", r.SystolicBP)
	}
	if r.DiastolicBP < 30 || r.DiastolicBP > 200 {
		add("pressao_diastolica", "must be between 30 and 200 mmHg, got %d", r.DiastolicBP)
	} else if r.DiastolicBP >= r.SystolicBP {
		add("pressao_diastolica", "must be lower than systolic pressure")
	}
	if r.HeartRate < 30 || r.HeartRate > 200 {
		add("freq_cardiaca", "must be between 30 and 200 bpm, got %d", r.HeartRate)
	}
	if r.Weight < 20 || r.Weight > 300 {
		add("peso", "must be between 20 and 300 kg, got %g", r.Weight)
	}
	if r.Height < 1.0 || r.Height > 2.5 {
		add("altura", "must be between 1.0 and 2.5 m, got %g", r.Height)
	}
	if r.Cholesterol < 50 || r.Cholesterol > 500 {
		add("colesterol", "must be between 50 and 500 mg/dL, got %d", r.Cholesterol)
	}
	if r.Glucose < 50 || r.Glucose > 400 {
		add("glicose", "must be between 50 and 400 mg/dL, got %d", r.Glucose)
	}
	if r.MedicationCount < 0 || r.MedicationCount > 20 {
		add("num_medicamentos", "must be between 0 and 20, got %d", r.MedicationCount)
	}
	if r.AnnualVisits < 0 || r.AnnualVisits > 50 {
		add("visitas_anuais", "must be between 0 and 50, got %d", r.AnnualVisits)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validBloodType(bt string) bool {
	for _, t := range BloodTypes {
		if bt == t {
			return true
		}
	}
	return false
}
