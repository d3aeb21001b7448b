package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tobrik/TMS/schema"
)

// LabResult - lab result document operations
type LabResult interface {
	SaveLabResult(patientID int64, doc schema.LabResultDocument) (*schema.LabResultRecord, error)
	ListLabResults(patientID int64) ([]schema.LabResultView, error)
}

// SaveLabResult stores the structured OCR output of one lab report image.
// The extracted items and the interpretation are sealed before they hit disk.
func (m mongoDB) SaveLabResult(patientID int64, doc schema.LabResultDocument) (*schema.LabResultRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	items, err := json.Marshal(doc.Results)
	if err != nil {
		return nil, err
	}

	record := schema.LabResultRecord{
		ResultID:       uuid.New().String(),
		PatientID:      patientID,
		TestType:       doc.TestType,
		TestDate:       doc.TestDate,
		Results:        m.cipher.Seal(string(items)),
		Interpretation: m.cipher.Seal(doc.Interpretation),
		ImageFilename:  doc.ImageFilename,
		Timestamp:      time.Now().Unix(),
	}

	c := m.client.Database(m.database).Collection(schema.LabResultCollection)
	if _, err := c.InsertOne(ctx, record); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListLabResults returns a patient's stored lab results, newest first.
func (m mongoDB) ListLabResults(patientID int64) ([]schema.LabResultView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LabResultCollection)
	cur, err := c.Find(ctx, bson.M{"patient_id": patientID},
		options.Find().SetSort(bson.M{"ts": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	views := []schema.LabResultView{}
	for cur.Next(ctx) {
		var record schema.LabResultRecord
		if err := cur.Decode(&record); err != nil {
			return nil, err
		}

		view := schema.LabResultView{
			ResultID:       record.ResultID,
			TestType:       record.TestType,
			TestDate:       record.TestDate,
			Interpretation: m.cipher.Open(record.Interpretation),
			Timestamp:      record.Timestamp,
		}

		var items []schema.LabResultItem
		if raw := m.cipher.Open(record.Results); raw != "" {
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				log.WithField("prefix", mongoLogPrefix).WithError(err).
					Warn("undecodable lab result items")
			}
		}
		view.Results = items

		views = append(views, view)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
