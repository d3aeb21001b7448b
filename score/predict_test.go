package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/score"
)

const scoreTolerance = 1e-9

func severityVector(values map[schema.SymptomCode]int) []int {
	v := make([]int, len(schema.SymptomCodes))
	for i, code := range schema.SymptomCodes {
		v[i] = values[code]
	}
	return v
}

func TestPredictReturnsRankedTopThree(t *testing.T) {
	// high fever with neck stiffness, the classic meningitis signature
	vector := severityVector(map[schema.SymptomCode]int{
		schema.Fever:         3,
		schema.Headache:      3,
		schema.NeckStiffness: 3,
		schema.Photophobia:   2,
	})

	top, err := score.Predict(schema.DiseaseModels, vector)
	assert.Nil(t, err, "wrong Predict")
	assert.Len(t, top, 3, "wrong number of predictions")
	assert.True(t, top[0].Score >= top[1].Score, "ranking not descending")
	assert.True(t, top[1].Score >= top[2].Score, "ranking not descending")
	assert.Equal(t, "Meningitis", top[0].Disease, "wrong top disease")
}

func TestPredictAllZeroVector(t *testing.T) {
	vector := make([]int, len(schema.SymptomCodes))

	top, err := score.Predict(schema.DiseaseModels, vector)
	assert.Nil(t, err, "wrong Predict")
	assert.Len(t, top, 3, "wrong number of predictions")

	// With nothing reported, every disease has matched == 0, so each score
	// degenerates to base/f_max dampened by 0.1. The ranking then follows
	// the baseline-to-weight ratio.
	expected := map[string]float64{}
	for _, m := range schema.DiseaseModels {
		fMax := m.Base
		for _, w := range m.Weights {
			fMax += w * 3
		}
		expected[m.Name] = m.Base / fMax * 0.1
	}

	assert.Equal(t, "Type 1 Diabetes", top[0].Disease, "wrong top1")
	assert.Equal(t, "Gastroenteritis", top[1].Disease, "wrong top2")
	assert.Equal(t, "Appendicitis", top[2].Disease, "wrong top3")

	for _, p := range top {
		assert.InDelta(t, expected[p.Disease], p.Score, scoreTolerance, "wrong score for %s", p.Disease)
	}
}

func TestPredictAllMaxVector(t *testing.T) {
	vector := make([]int, len(schema.SymptomCodes))
	for i := range vector {
		vector[i] = schema.MaxSeverity
	}

	top, err := score.Predict(schema.DiseaseModels, vector)
	assert.Nil(t, err, "wrong Predict")

	// f accumulates exactly the same terms as f_max, so every raw score is
	// 1.0 and dampening cannot trigger; ties keep catalog order.
	assert.Equal(t, "Gastroenteritis", top[0].Disease, "wrong tie-break order")
	assert.Equal(t, "Croup", top[1].Disease, "wrong tie-break order")
	assert.Equal(t, "Scarlet Fever", top[2].Disease, "wrong tie-break order")
	for _, p := range top {
		assert.Equal(t, 1.0, p.Score, "wrong score for %s", p.Disease)
	}
}

func TestPredictTruncatesOversizedVector(t *testing.T) {
	vector := severityVector(map[schema.SymptomCode]int{
		schema.Cough:   2,
		schema.Stridor: 3,
	})
	oversized := append(append([]int{}, vector...), 3, 3, 3, 3)

	want, err := score.Predict(schema.DiseaseModels, vector)
	assert.Nil(t, err, "wrong Predict")
	got, err := score.Predict(schema.DiseaseModels, oversized)
	assert.Nil(t, err, "wrong Predict")
	assert.Equal(t, want, got, "oversized vector not truncated to catalog width")
}

func TestPredictInsufficientCatalog(t *testing.T) {
	_, err := score.Predict(schema.DiseaseModels[:2], make([]int, len(schema.SymptomCodes)))
	assert.Equal(t, score.ErrInsufficientCatalog, err, "wrong error")
}

func TestPredictInvalidCatalog(t *testing.T) {
	truncated := schema.DiseaseModel{Name: "Broken", Weights: []float64{1, 2, 3}, Base: 1}
	models := append([]schema.DiseaseModel{truncated}, schema.DiseaseModels[:2]...)

	_, err := score.Predict(models, make([]int, len(schema.SymptomCodes)))
	assert.Equal(t, score.ErrInvalidCatalog, err, "wrong error")

	zero := schema.DiseaseModel{Name: "Zero", Weights: make([]float64, len(schema.SymptomCodes)), Base: 0}
	models = append([]schema.DiseaseModel{zero}, schema.DiseaseModels[:2]...)

	_, err = score.Predict(models, make([]int, len(schema.SymptomCodes)))
	assert.Equal(t, score.ErrInvalidCatalog, err, "wrong error")
}

func TestValidateCatalog(t *testing.T) {
	assert.Nil(t, score.ValidateCatalog(schema.DiseaseModels), "static catalog must be valid")

	assert.Error(t, score.ValidateCatalog(schema.DiseaseModels[:2]), "short catalog not rejected")

	broken := append([]schema.DiseaseModel{}, schema.DiseaseModels...)
	broken[0].Weights = broken[0].Weights[:5]
	assert.Error(t, score.ValidateCatalog(broken), "mismatched weights not rejected")

	zero := append([]schema.DiseaseModel{}, schema.DiseaseModels...)
	zero[0] = schema.DiseaseModel{Name: "Zero", Weights: make([]float64, len(schema.SymptomCodes)), Base: 0}
	assert.Error(t, score.ValidateCatalog(zero), "zero f_max not rejected")
}
