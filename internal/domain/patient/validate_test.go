package patient

import (
	"errors"
	"strings"
	"testing"
)

// validRecord returns a record that passes every clinical bound. Tests
// mutate single fields from this baseline.
func validRecord() Record {
	return Record{
		Age:         45,
		Gender:      GenderFemale,
		BloodType:   "A+",
		SystolicBP:  120,
		DiastolicBP: 80,
		HeartRate:   70,
		Weight:      70,
		Height:      1.70,
		Cholesterol: 190,
		Glucose:     95,
	}
}

func TestValidate_AcceptsValidRecord(t *testing.T) {
	rec := validRecord()
	if err := rec.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
}

func TestValidate_FieldBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
		field  string
	}{
		{"age below minimum", func(r *Record) { r.Age = 17 }, "idade"},
		{"age above maximum", func(r *Record) { r.Age = 121 }, "idade"},
		{"unknown gender", func(r *Record) { r.Gender = "Outro" }, "genero"},
		{"empty gender", func(r *Record) { r.Gender = "" }, "genero"},
		{"unknown blood type", func(r *Record) { r.BloodType = "C+" }, "tipo_sanguineo"},
		{"systolic too low", func(r *Record) { r.SystolicBP = 59 }, "pressao_sistolica"},
		{"systolic too high", func(r *Record) { r.SystolicBP = 301 }, "pressao_sistolica"},
		{"diastolic too low", func(r *Record) { r.DiastolicBP = 29 }, "pressao_diastolica"},
		{"diastolic too high", func(r *Record) { r.DiastolicBP = 201 }, "pressao_diastolica"},
		{"heart rate too low", func(r *Record) { r.HeartRate = 29 }, "freq_cardiaca"},
		{"heart rate too high", func(r *Record) { r.HeartRate = 201 }, "freq_cardiaca"},
		{"weight too low", func(r *Record) { r.Weight = 19 }, "peso"},
		{"weight too high", func(r *Record) { r.Weight = 301 }, "peso"},
		{"height too low", func(r *Record) { r.Height = 0.99 }, "altura"},
		{"height too high", func(r *Record) { r.Height = 2.51 }, "altura"},
		{"cholesterol too low", func(r *Record) { r.Cholesterol = 49 }, "colesterol"},
		{"cholesterol too high", func(r *Record) { r.Cholesterol = 501 }, "colesterol"},
		{"glucose too low", func(r *Record) { r.Glucose = 49 }, "glicose"},
		{"glucose too high", func(r *Record) { r.Glucose = 401 }, "glicose"},
		{"negative medications", func(r *Record) { r.MedicationCount = -1 }, "num_medicamentos"},
		{"too many medications", func(r *Record) { r.MedicationCount = 21 }, "num_medicamentos"},
		{"negative visits", func(r *Record) { r.AnnualVisits = -1 }, "visitas_anuais"},
		{"too many visits", func(r *Record) { r.AnnualVisits = 51 }, "visitas_anuais"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := rec.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field error for %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestValidate_DiastolicMustBeBelowSystolic(t *testing.T) {
	rec := validRecord()
	rec.SystolicBP = 110
	rec.DiastolicBP = 110

	err := rec.Validate()
	if err == nil {
		t.Fatal("expected validation error for diastolic >= systolic")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "pressao_diastolica" {
		t.Errorf("expected single pressao_diastolica error, got %v", verr.Fields)
	}
}

func TestValidate_BoundaryValuesAccepted(t *testing.T) {
	rec := validRecord()
	rec.Age = 18
	rec.HeartRate = 30
	rec.Weight = 20
	rec.Height = 2.5
	rec.Cholesterol = 500
	rec.Glucose = 400
	rec.MedicationCount = 20
	rec.AnnualVisits = 50

	if err := rec.Validate(); err != nil {
		t.Errorf("expected boundary values to be accepted, got %v", err)
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	rec := Record{} // zero record violates nearly every bound

	err := rec.Validate()
	if err == nil {
		t.Fatal("expected validation error for zero record")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) < 10 {
		t.Errorf("expected violations collected for all fields, got %d: %v", len(verr.Fields), verr.Fields)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "idade", Message: "must be between 18 and 120 years, got 5"},
		{Field: "peso", Message: "must be between 20 and 300 kg, got 10"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "idade") || !strings.Contains(msg, "peso") {
		t.Errorf("expected both fields in message, got %q", msg)
	}
}
