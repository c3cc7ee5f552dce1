package dto

import (
	"time"

	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/intake"
)

type LifestyleRequest struct {
	Smoking bool   `json:"smoking"`
	Alcohol bool   `json:"alcohol"`
	Sleep   string `json:"sleep"`
	Stress  string `json:"stress"`
}

// IntakeRequest carries a questionnaire. Omitted answers fall back to the form
// defaults; everything else is checked step by step by the intake schema.
type IntakeRequest struct {
	Age            string `json:"age"`
	WeightKg       string `json:"weight_kg"`
	HeightCm       string `json:"height_cm"`
	BodyFatPercent string `json:"body_fat_percent"`

	MedicalHistory     []string `json:"medical_history"`
	CurrentMedications []string `json:"current_medications"`
	Allergies          []string `json:"allergies"`
	PreviousInjuries   []string `json:"previous_injuries"`

	ExerciseFrequency string   `json:"exercise_frequency"`
	ExerciseIntensity string   `json:"exercise_intensity"`
	FitnessGoals      []string `json:"fitness_goals"`

	Lifestyle *LifestyleRequest `json:"lifestyle"`
}

func (r IntakeRequest) ToRecord() intake.Record {
	rec := intake.DefaultRecord()
	rec.Age = r.Age
	rec.WeightKg = r.WeightKg
	rec.HeightCm = r.HeightCm
	rec.BodyFatPercent = r.BodyFatPercent
	rec.ExerciseFrequency = r.ExerciseFrequency

	setIfPresent(&rec.MedicalHistory, r.MedicalHistory)
	setIfPresent(&rec.CurrentMedications, r.CurrentMedications)
	setIfPresent(&rec.Allergies, r.Allergies)
	setIfPresent(&rec.PreviousInjuries, r.PreviousInjuries)
	setIfPresent(&rec.FitnessGoals, r.FitnessGoals)

	if r.ExerciseIntensity != "" {
		rec.ExerciseIntensity = intake.Intensity(r.ExerciseIntensity)
	}
	if r.Lifestyle != nil {
		rec.Lifestyle.Smoking = r.Lifestyle.Smoking
		rec.Lifestyle.Alcohol = r.Lifestyle.Alcohol
		if r.Lifestyle.Sleep != "" {
			rec.Lifestyle.Sleep = r.Lifestyle.Sleep
		}
		if r.Lifestyle.Stress != "" {
			rec.Lifestyle.Stress = r.Lifestyle.Stress
		}
	}
	return rec
}

func setIfPresent(dst *[]string, v []string) {
	if v != nil {
		*dst = v
	}
}

type StepErrorResponse struct {
	Step    int    `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type StepValidResponse struct {
	Step  int  `json:"step"`
	Valid bool `json:"valid"`
}

type AssessmentResponse struct {
	CreatedAt time.Time     `json:"created_at"`
	Record    intake.Record `json:"record"`
}

func NewAssessmentResponses(items []evolution.Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AssessmentResponse{CreatedAt: a.CreatedAt, Record: a.Record})
	}
	return out
}
