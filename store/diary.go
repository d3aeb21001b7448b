package store

import (
	"github.com/jinzhu/gorm"

	"github.com/Tobrik/TMS/schema"
)

// InsertDiaryDay persists one day of the symptom diary: the day record plus
// one row per symptom code. The whole write is a single transaction so a
// failure leaves nothing behind.
func (s *TMSStore) InsertDiaryDay(patientID int64, severities []int, diseasePredict, topDisease string, score float64, diseaseSetup, recept string) (int64, error) {
	if len(severities) != len(schema.SymptomCodes) {
		return 0, ErrInvalidSymptomVector
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	day := schema.DiaryDay{
		PatientID:      patientID,
		DiseasePredict: diseasePredict,
		TopDisease:     topDisease,
		Score:          score,
		DiseaseSetup:   diseaseSetup,
		Recept:         recept,
	}
	s.sealDayFields(&day)
	if err := tx.Create(&day).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	for i, code := range schema.SymptomCodes {
		row := schema.DiarySymptom{
			DayID:       day.DayID,
			SymptomCode: code,
			Value:       severities[i],
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	return day.DayID, nil
}

// GetPatientHistory returns the most recent diary days for a patient,
// newest first, with the reviewing doctor's name resolved when present.
func (s *TMSStore) GetPatientHistory(patientID int64, limit int) ([]schema.DiaryHistoryEntry, error) {
	var days []schema.DiaryDay
	if err := s.ormDB.
		Where("patient_id = ?", patientID).
		Order("day_id desc").
		Limit(limit).
		Find(&days).Error; err != nil {
		return nil, err
	}

	doctorIDs := make([]int64, 0, len(days))
	for _, d := range days {
		if d.DoctorID != nil {
			doctorIDs = append(doctorIDs, *d.DoctorID)
		}
	}

	doctorNames := map[int64]string{}
	if len(doctorIDs) > 0 {
		var doctors []schema.Doctor
		if err := s.ormDB.Where("doctor_id IN (?)", doctorIDs).Find(&doctors).Error; err != nil {
			return nil, err
		}
		for _, d := range doctors {
			doctorNames[d.DoctorID] = d.FullName
		}
	}

	entries := make([]schema.DiaryHistoryEntry, 0, len(days))
	for _, d := range days {
		entry := s.openHistoryEntry(d)
		if d.DoctorID != nil {
			entry.DoctorID = d.DoctorID
			entry.DoctorName = doctorNames[*d.DoctorID]
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// sealDayFields protects the clinical text columns of a diary day before it
// hits disk. Numeric columns stay in the clear so SQL can order and join on
// them.
func (s *TMSStore) sealDayFields(day *schema.DiaryDay) {
	day.DiseasePredict = s.cipher.Seal(day.DiseasePredict)
	day.TopDisease = s.cipher.Seal(day.TopDisease)
	day.DiseaseSetup = s.cipher.Seal(day.DiseaseSetup)
	day.Recept = s.cipher.Seal(day.Recept)
}

func (s *TMSStore) openHistoryEntry(d schema.DiaryDay) schema.DiaryHistoryEntry {
	return schema.DiaryHistoryEntry{
		DayID:              d.DayID,
		DiseasePredict:     s.cipher.Open(d.DiseasePredict),
		TopDisease:         s.cipher.Open(d.TopDisease),
		Score:              d.Score,
		DiseaseSetup:       s.cipher.Open(d.DiseaseSetup),
		Recept:             s.cipher.Open(d.Recept),
		PatientExplanation: s.cipher.Open(d.PatientExplanation),
		DoctorExplanation:  s.cipher.Open(d.DoctorExplanation),
		CreatedAt:          d.CreatedAt,
	}
}

func (s *TMSStore) GetDaySymptoms(dayID int64) (map[string]int, error) {
	var rows []schema.DiarySymptom
	if err := s.ormDB.Where("day_id = ?", dayID).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrDayNotFound
	}

	values := make(map[string]int, len(rows))
	for _, r := range rows {
		values[string(r.SymptomCode)] = r.Value
	}

	return values, nil
}

// GetSymptomGraph returns the chronological severity series of one symptom
// for a patient, oldest first.
func (s *TMSStore) GetSymptomGraph(patientID int64, code string) ([]schema.SymptomPoint, error) {
	if !schema.IsSymptomCode(schema.SymptomCode(code)) {
		return nil, ErrUnknownSymptomCode
	}

	var points []schema.SymptomPoint
	if err := s.ormDB.
		Table("diary_symptoms").
		Select("diary_symptoms.day_id, diary_days.created_at, diary_symptoms.value").
		Joins("JOIN diary_days ON diary_days.day_id = diary_symptoms.day_id").
		Where("diary_days.patient_id = ? AND diary_symptoms.symptom_code = ?", patientID, code).
		Order("diary_days.day_id asc").
		Scan(&points).Error; err != nil {
		return nil, err
	}

	return points, nil
}

func (s *TMSStore) DayBelongsToPatient(dayID, patientID int64) (bool, error) {
	var day schema.DiaryDay
	if err := s.ormDB.Where("day_id = ?", dayID).First(&day).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return false, ErrDayNotFound
		}
		return false, err
	}

	return day.PatientID == patientID, nil
}

// SaveExplanation attaches a free-text note to a diary day, in either the
// patient or the doctor column depending on the author role.
func (s *TMSStore) SaveExplanation(dayID int64, role, text string) error {
	column := "patient_explanation"
	if role == schema.RoleDoctor {
		column = "doctor_explanation"
	}

	result := s.ormDB.Model(schema.DiaryDay{}).
		Where("day_id = ?", dayID).
		Update(column, s.cipher.Seal(text))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// UpdateDayByDoctor records a doctor's review of a diary day. Only the
// provided fields change, and the reviewing doctor is stamped on the row.
func (s *TMSStore) UpdateDayByDoctor(dayID, doctorID int64, diseaseSetup, recept *string) error {
	updates := map[string]interface{}{}
	if diseaseSetup != nil {
		updates["disease_setup"] = s.cipher.Seal(*diseaseSetup)
	}
	if recept != nil {
		updates["recept"] = s.cipher.Seal(*recept)
	}
	if len(updates) == 0 {
		return ErrEmptyUpdate
	}
	updates["doctor_id"] = doctorID

	result := s.ormDB.Model(schema.DiaryDay{}).
		Where("day_id = ?", dayID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}
