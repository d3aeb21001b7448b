package score

import (
	"strings"

	"github.com/Tobrik/TMS/schema"
)

// ZoneType is the clinical urgency zone of a patient's latest submission.
type ZoneType string

const (
	ZoneRed    ZoneType = "red"
	ZoneYellow ZoneType = "yellow"
	ZoneGreen  ZoneType = "green"
)

const (
	redScoreThreshold    = 0.6
	yellowScoreThreshold = 0.4
)

// Zone classifies a top-ranked disease and composite score into an urgency
// zone. The override sets win over the score so conditions like suspected
// meningitis can never be classified below their floor; the thresholds are
// strict, a score of exactly 0.6 resolves to the lower zone.
func Zone(disease string, score float64) ZoneType {
	if schema.RedZoneDiseases[disease] || score > redScoreThreshold {
		return ZoneRed
	}
	if schema.YellowZoneDiseases[disease] || score > yellowScoreThreshold {
		return ZoneYellow
	}
	return ZoneGreen
}

// TopDisease picks the label to classify from a stored diary entry: the
// structured top-1 column when present, otherwise the first whitespace token
// of the concatenated display string written by older entries.
func TopDisease(topDisease, diseasePredict string) string {
	if topDisease != "" {
		return topDisease
	}
	fields := strings.Fields(diseasePredict)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
