package store

import (
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tobrik/TMS/schema"
)

// CreatePatient registers a patient account with a bcrypt password hash.
func (s *TMSStore) CreatePatient(fullName, city, password string) (*schema.Patient, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := schema.Patient{
		FullName:     s.cipher.Seal(fullName),
		City:         s.cipher.Seal(city),
		PasswordHash: string(hash),
	}
	if err := s.ormDB.Create(&p).Error; err != nil {
		return nil, err
	}

	p.FullName = fullName
	p.City = city
	return &p, nil
}

func (s *TMSStore) GetPatient(patientID int64) (*schema.Patient, error) {
	var p schema.Patient
	if err := s.ormDB.Where("patient_id = ?", patientID).First(&p).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	s.openPatient(&p)
	return &p, nil
}

func (s *TMSStore) openPatient(p *schema.Patient) {
	p.FullName = s.cipher.Open(p.FullName)
	p.City = s.cipher.Open(p.City)
}

// VerifyPatientPassword checks a patient's password against the stored
// hash. The error is the same whether the account is missing or the
// password is wrong.
func (s *TMSStore) VerifyPatientPassword(patientID int64, password string) (*schema.Patient, error) {
	var p schema.Patient
	if err := s.ormDB.Where("patient_id = ?", patientID).First(&p).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.openPatient(&p)
	return &p, nil
}
