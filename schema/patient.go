package schema

import (
	"time"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

type Patient struct {
	PatientID    int64     `json:"patient_id" gorm:"primary_key"`
	FullName     string    `json:"full_name"`
	City         string    `json:"city"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}
