package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/Tobrik/TMS/external/alert"
)

// NotifyRedZone delivers an on-call alert for a red-zone diary day. The task
// re-reads the patient so the alert carries up-to-date identity data even if
// the queue was backed up.
func (m *BackgroundManager) NotifyRedZone(patientID, dayID int64, disease string, score float64) error {
	logEntry := log.WithField("prefix", "background").
		WithField("patient_id", patientID).
		WithField("day_id", dayID)

	if _, err := m.store.GetPatient(patientID); err != nil {
		logEntry.WithError(err).Error("resolve patient for red zone alert")
		return err
	}

	if err := m.notifier.NotifyRedZone(patientID, dayID, disease, score); err != nil {
		if err == alert.ErrEmptyEndpoint {
			logEntry.Warn("red zone alert endpoint not configured")
			return nil
		}
		logEntry.WithError(err).Error("deliver red zone alert")
		return err
	}

	logEntry.WithField("disease", disease).Info("red zone alert delivered")
	return nil
}
