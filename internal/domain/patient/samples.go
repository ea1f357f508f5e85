package patient

// SampleSet carries the three example records exposed by the analysis
// service for prefill and testing, one per risk band.
type SampleSet struct {
	LowRisk    Record `json:"exemplo_baixo_risco"`
	MediumRisk Record `json:"exemplo_medio_risco"`
	HighRisk   Record `json:"exemplo_alto_risco"`
}

// Samples returns the built-in example records. They mirror the remote
// service's /exemplo-paciente payload and are served locally when the
// service is unreachable.
func Samples() SampleSet {
	return SampleSet{
		LowRisk: Record{
			Age:         35,
			Gender:      GenderFemale,
			BloodType:   "O+",
			SystolicBP:  110,
			DiastolicBP: 70,
			HeartRate:   68,
			Weight:      65,
			Height:      1.65,
			Cholesterol: 180,
			Glucose:     90,
		},
		MediumRisk: Record{
			Age:             50,
			Gender:          GenderMale,
			BloodType:       "A+",
			SystolicBP:      135,
			DiastolicBP:     85,
			HeartRate:       75,
			Weight:          85,
			Height:          1.75,
			Cholesterol:     220,
			Glucose:         105,
			MedicationCount: 2,
			AnnualVisits:    2,
			Fatigue:         true,
		},
		HighRisk: Record{
			Age:               65,
			Gender:            GenderMale,
			BloodType:         "A+",
			SystolicBP:        165,
			DiastolicBP:       95,
			HeartRate:         85,
			Weight:            95,
			Height:            1.75,
			Cholesterol:       280,
			Glucose:           140,
			MedicationCount:   4,
			AnnualVisits:      6,
			ChestPain:         true,
			ShortnessOfBreath: true,
			Fatigue:           true,
		},
	}
}
