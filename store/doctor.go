package store

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tobrik/TMS/schema"
)

func (s *TMSStore) GetDoctor(doctorID int64) (*schema.Doctor, error) {
	var d schema.Doctor
	if err := s.ormDB.Where("doctor_id = ?", doctorID).First(&d).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (s *TMSStore) VerifyDoctorPassword(doctorID int64, password string) (*schema.Doctor, error) {
	var d schema.Doctor
	if err := s.ormDB.Where("doctor_id = ?", doctorID).First(&d).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &d, nil
}

func (s *TMSStore) ListDoctors() ([]schema.Doctor, error) {
	var doctors []schema.Doctor
	if err := s.ormDB.Order("doctor_id asc").Find(&doctors).Error; err != nil {
		return nil, err
	}

	return doctors, nil
}

// SeedDoctors provisions doctor accounts from a "name|specialty|password"
// list separated by semicolons. Existing doctors are left untouched, so the
// seed is safe to run on every migration.
func SeedDoctors(ormDB *gorm.DB, seed string) error {
	for _, entry := range strings.Split(seed, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, "|", 3)
		if len(parts) != 3 {
			return fmt.Errorf("malformed doctor seed entry: %q", entry)
		}

		var existing schema.Doctor
		err := ormDB.Where("full_name = ?", parts[0]).First(&existing).Error
		if err == nil {
			continue
		}
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(parts[2]), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		d := schema.Doctor{
			FullName:     parts[0],
			Specialty:    parts[1],
			PasswordHash: string(hash),
		}
		if err := ormDB.Create(&d).Error; err != nil {
			return err
		}
	}

	return nil
}
