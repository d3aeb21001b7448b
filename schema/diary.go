package schema

import (
	"time"
)

// DiaryDay is one persisted analysis submission. It is created exactly once
// per submission and later mutated in place by doctor annotation or by
// explanation text; the service never deletes it.
type DiaryDay struct {
	DayID     int64  `json:"day_id" gorm:"primary_key"`
	PatientID int64  `json:"patient_id" gorm:"index"`
	DoctorID  *int64 `json:"doctor_id"`

	// DiseasePredict is the display string ("Nothing" or "<D1> <D2> <D3>");
	// TopDisease keeps the top-1 label as its own column so the triage
	// classifier does not have to re-parse the display formatting.
	DiseasePredict     string  `json:"disease_predict"`
	TopDisease         string  `json:"top_disease"`
	Score              float64 `json:"score"`
	DiseaseSetup       string  `json:"disease_setup"`
	Recept             string  `json:"recept"`
	PatientExplanation string  `json:"patient_explanation"`
	DoctorExplanation  string  `json:"doctor_explanation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// DiarySymptom is one of the 23 severity values recorded with a diary day.
type DiarySymptom struct {
	DayID       int64       `json:"day_id" gorm:"primary_key;auto_increment:false"`
	SymptomCode SymptomCode `json:"symptom_code" gorm:"primary_key"`
	Value       int         `json:"value"`
}

// DiaryHistoryEntry is one row of a patient's diary history, with the
// annotating doctor's name resolved.
type DiaryHistoryEntry struct {
	DayID              int64     `json:"day_id"`
	CreatedAt          time.Time `json:"created_at"`
	DiseasePredict     string    `json:"disease_predict"`
	TopDisease         string    `json:"top_disease"`
	Score              float64   `json:"score"`
	DiseaseSetup       string    `json:"disease_setup"`
	Recept             string    `json:"recept"`
	DoctorID           *int64    `json:"doctor_id"`
	DoctorName         string    `json:"doctor_name"`
	PatientExplanation string    `json:"patient_explanation"`
	DoctorExplanation  string    `json:"doctor_explanation"`
}

// SymptomPoint is one observation of a single symptom over time.
type SymptomPoint struct {
	DayID     int64     `json:"day_id"`
	CreatedAt time.Time `json:"created_at"`
	Value     int       `json:"value"`
}

// TriagePatient is one row of the clinician worklist: a patient together
// with their most recent diary entry. Zone is derived on every read and is
// never stored.
type TriagePatient struct {
	PatientID   int64      `json:"patient_id"`
	FullName    string     `json:"full_name"`
	City        string     `json:"city"`
	CreatedAt   time.Time  `json:"created_at"`
	LastDisease string     `json:"last_disease"`
	TopDisease  string     `json:"-"`
	LastScore   float64    `json:"last_score"`
	DiagDate    *time.Time `json:"diag_date"`
	Zone        string     `json:"zone"`
}
