package score

import (
	"strings"

	"github.com/Tobrik/TMS/schema"
)

// ConfidenceFloor is the composite score below which the system declines to
// assert a differential diagnosis rather than report a noisy one.
const ConfidenceFloor = 0.2

// Composite returns the composite severity score of one submission: the
// arithmetic mean of the ranked top scores.
func Composite(predictions []Prediction) float64 {
	var sum float64
	for _, p := range predictions {
		sum += p.Score
	}
	return sum / float64(len(predictions))
}

// PreliminaryDiagnose formats the differential as "<D1> <D2> <D3>". When the
// composite score is below the confidence floor and the caller kept the
// default manual override, the sentinel "Nothing" is returned instead; any
// non-default override suppresses the sentinel regardless of the score.
func PreliminaryDiagnose(predictions []Prediction, composite float64, diagnoseSetup string) string {
	if composite < ConfidenceFloor && diagnoseSetup == schema.DiagnoseNothing {
		return schema.DiagnoseNothing
	}

	labels := make([]string, len(predictions))
	for i, p := range predictions {
		labels[i] = p.Disease
	}
	return strings.Join(labels, " ")
}

// Recommendation looks up the care advice for the top disease. A miss falls
// over to the generic consult-a-physician text instead of failing: the
// catalog is closed, so a miss is unexpected but must not break a request.
func Recommendation(disease string) string {
	if r, ok := schema.DiseaseRecommendations[disease]; ok {
		return r
	}
	return schema.GenericRecommendation
}
