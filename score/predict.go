package score

import (
	"fmt"
	"sort"

	"github.com/Tobrik/TMS/schema"
)

var (
	// ErrInvalidCatalog means the static disease catalog itself is broken:
	// a weight vector whose length mismatches the symptom catalog, or a
	// model whose maximum achievable score is zero. This is a configuration
	// defect and should stop the process at startup, not per request.
	ErrInvalidCatalog = fmt.Errorf("invalid disease catalog")

	// ErrInsufficientCatalog means fewer diseases are registered than the
	// ranking returns.
	ErrInsufficientCatalog = fmt.Errorf("fewer than %d diseases in the catalog", TopPredictions)
)

// TopPredictions is the length of the ranked differential diagnosis.
const TopPredictions = 3

// lowOverlapDampening penalizes a disease whose positively weighted symptoms
// are all absent from the report, even when the baseline keeps the raw
// weighted sum well above zero.
const lowOverlapDampening = 0.1

// Prediction is one entry of the ranked differential diagnosis.
type Prediction struct {
	Disease string  `json:"disease"`
	Score   float64 `json:"score"`
}

// Predict scores a severity vector against every disease of the catalog and
// returns the top entries, descending by score. Exact ties keep catalog
// order. Vectors longer than the symptom catalog are truncated to its width;
// shorter vectors are the caller's error and must be rejected before calling.
//
// Per disease the score is f/f_max where f is the baseline plus the weighted
// severities and f_max the baseline plus the weighted maximum severities, so
// diseases with different numbers of informative weights stay comparable.
func Predict(models []schema.DiseaseModel, severities []int) ([]Prediction, error) {
	if len(models) < TopPredictions {
		return nil, ErrInsufficientCatalog
	}

	width := len(schema.SymptomCodes)
	if len(severities) > width {
		severities = severities[:width]
	}

	predictions := make([]Prediction, 0, len(models))
	for _, m := range models {
		if len(m.Weights) != width {
			return nil, ErrInvalidCatalog
		}

		f := m.Base
		fMax := m.Base
		relevant := 0
		matched := 0
		for i, v := range severities {
			f += m.Weights[i] * float64(v)
			fMax += m.Weights[i] * schema.MaxSeverity
			if m.Weights[i] > 0 {
				relevant++
				if v > 0 {
					matched++
				}
			}
		}

		if fMax == 0 {
			return nil, ErrInvalidCatalog
		}

		score := f / fMax
		if relevant > 0 && matched == 0 {
			score *= lowOverlapDampening
		}

		predictions = append(predictions, Prediction{Disease: m.Name, Score: score})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	return predictions[:TopPredictions], nil
}

// ValidateCatalog checks the catalog invariants Predict relies on. It is
// meant to run once at process start so a broken catalog fails the service
// instead of surfacing per request.
func ValidateCatalog(models []schema.DiseaseModel) error {
	if len(models) < TopPredictions {
		return ErrInsufficientCatalog
	}

	for _, m := range models {
		if len(m.Weights) != len(schema.SymptomCodes) {
			return fmt.Errorf("%w: %s has %d weights, want %d", ErrInvalidCatalog, m.Name, len(m.Weights), len(schema.SymptomCodes))
		}

		fMax := m.Base
		for _, w := range m.Weights {
			fMax += w * schema.MaxSeverity
		}
		if fMax == 0 {
			return fmt.Errorf("%w: %s has zero maximum score", ErrInvalidCatalog, m.Name)
		}
	}

	return nil
}
