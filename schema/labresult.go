package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LabResultCollection = "labResults"

// LabResultItem is one typed key/value row extracted from a lab report image.
type LabResultItem struct {
	Name           string `json:"name" bson:"name"`
	Value          string `json:"value" bson:"value"`
	Unit           string `json:"unit" bson:"unit"`
	ReferenceRange string `json:"reference_range" bson:"reference_range"`
	Status         string `json:"status" bson:"status"` // "normal", "high" or "low"
}

// LabResultDocument is the structured OCR output for one uploaded image.
type LabResultDocument struct {
	TestType       string          `json:"test_type"`
	TestDate       string          `json:"test_date"`
	Interpretation string          `json:"interpretation"`
	Results        []LabResultItem `json:"results"`
	ImageFilename  string          `json:"-"`
}

// LabResultRecord is the stored form of a lab result. Results holds the
// cipher-protected JSON of the extracted items and Interpretation the
// cipher-protected interpretation text.
type LabResultRecord struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ResultID       string             `json:"result_id" bson:"result_id"`
	PatientID      int64              `json:"patient_id" bson:"patient_id"`
	TestType       string             `json:"test_type" bson:"test_type"`
	TestDate       string             `json:"test_date" bson:"test_date"`
	Results        string             `json:"-" bson:"results"`
	Interpretation string             `json:"-" bson:"interpretation"`
	ImageFilename  string             `json:"-" bson:"image_filename"`
	Timestamp      int64              `json:"ts" bson:"ts"`
}

// LabResultView is the decoded, caller-facing form of a stored lab result.
type LabResultView struct {
	ResultID       string          `json:"result_id"`
	TestType       string          `json:"test_type"`
	TestDate       string          `json:"test_date"`
	Results        []LabResultItem `json:"results"`
	Interpretation string          `json:"interpretation"`
	Timestamp      int64           `json:"ts"`
}
