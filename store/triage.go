package store

import (
	"time"

	"github.com/Tobrik/TMS/schema"
)

type triageRow struct {
	PatientID      int64
	FullName       string
	City           string
	CreatedAt      time.Time
	DiseasePredict *string
	TopDisease     *string
	Score          *float64
	DiagDate       *time.Time
}

// TriageRoster joins every patient against their single most recent diary
// day. Patients with no diary history appear with NULL diagnosis fields.
func (s *TMSStore) TriageRoster() ([]schema.TriagePatient, error) {
	rows, err := s.ormDB.Raw(`
		SELECT p.patient_id, p.full_name, p.city, p.created_at,
		       d.disease_predict, d.top_disease, d.score, d.created_at AS diag_date
		FROM patients p
		LEFT JOIN diary_days d ON d.day_id = (
			SELECT day_id FROM diary_days
			WHERE patient_id = p.patient_id
			ORDER BY day_id DESC
			LIMIT 1
		)
		ORDER BY p.patient_id ASC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := []schema.TriagePatient{}
	for rows.Next() {
		var r triageRow
		if err := rows.Scan(&r.PatientID, &r.FullName, &r.City, &r.CreatedAt,
			&r.DiseasePredict, &r.TopDisease, &r.Score, &r.DiagDate); err != nil {
			return nil, err
		}

		p := schema.TriagePatient{
			PatientID: r.PatientID,
			FullName:  r.FullName,
			City:      r.City,
			CreatedAt: r.CreatedAt,
			DiagDate:  r.DiagDate,
		}
		if r.DiseasePredict != nil {
			p.LastDisease = *r.DiseasePredict
		}
		if r.TopDisease != nil {
			p.TopDisease = *r.TopDisease
		}
		if r.Score != nil {
			p.LastScore = *r.Score
		}
		s.openTriageRow(&p)
		roster = append(roster, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}

// openTriageRow decrypts the sealed columns of a roster row. The disease
// labels must be plaintext before zone classification sees them.
func (s *TMSStore) openTriageRow(p *schema.TriagePatient) {
	p.FullName = s.cipher.Open(p.FullName)
	p.City = s.cipher.Open(p.City)
	p.LastDisease = s.cipher.Open(p.LastDisease)
	p.TopDisease = s.cipher.Open(p.TopDisease)
}
