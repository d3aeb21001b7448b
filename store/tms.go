package store

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/Tobrik/TMS/schema"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDayNotFound          = errors.New("diary day not found")
	ErrUnknownSymptomCode   = errors.New("unknown symptom code")
	ErrEmptyUpdate          = errors.New("nothing to update")
	ErrInvalidSymptomVector = errors.New("invalid symptom vector")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// triage main datastore
type TMSCore interface {
	Ping() error

	// Patient
	CreatePatient(fullName, city, password string) (*schema.Patient, error)
	GetPatient(patientID int64) (*schema.Patient, error)
	VerifyPatientPassword(patientID int64, password string) (*schema.Patient, error)

	// Doctor
	GetDoctor(doctorID int64) (*schema.Doctor, error)
	VerifyDoctorPassword(doctorID int64, password string) (*schema.Doctor, error)
	ListDoctors() ([]schema.Doctor, error)

	// Diary
	InsertDiaryDay(patientID int64, severities []int, diseasePredict, topDisease string, score float64, diseaseSetup, recept string) (int64, error)
	GetPatientHistory(patientID int64, limit int) ([]schema.DiaryHistoryEntry, error)
	GetDaySymptoms(dayID int64) (map[string]int, error)
	GetSymptomGraph(patientID int64, code string) ([]schema.SymptomPoint, error)
	DayBelongsToPatient(dayID, patientID int64) (bool, error)
	SaveExplanation(dayID int64, role, text string) error
	UpdateDayByDoctor(dayID, doctorID int64, diseaseSetup, recept *string) error

	// Triage
	TriageRoster() ([]schema.TriagePatient, error)
}

// TMSStore is an implementation of TMSCore
type TMSStore struct {
	ormDB  *gorm.DB
	mongo  MongoStore
	cipher *FieldCipher
}

func NewTMSStore(ormDB *gorm.DB, mongo MongoStore, cipher *FieldCipher) *TMSStore {
	return &TMSStore{
		ormDB:  ormDB,
		mongo:  mongo,
		cipher: cipher,
	}
}

// Ping is to check the storage health status
func (s *TMSStore) Ping() error {
	return s.ormDB.DB().Ping()
}
