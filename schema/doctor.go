package schema

import (
	"time"
)

type Doctor struct {
	DoctorID     int64     `json:"doctor_id" gorm:"primary_key"`
	FullName     string    `json:"full_name"`
	Specialty    string    `json:"specialty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}
