package alert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrEmptyEndpoint  = fmt.Errorf("empty endpoint")
	ErrResponseStatus = fmt.Errorf("alert endpoint returned non-2xx status")
)

// Notifier delivers urgent-case notifications to the on-call clinician
// channel.
type Notifier interface {
	NotifyRedZone(patientID, dayID int64, disease string, score float64) error
}

type notifier struct {
	endpoint string
	token    string
	client   *http.Client
}

type redZonePayload struct {
	PatientID int64   `json:"patient_id"`
	DayID     int64   `json:"day_id"`
	Disease   string  `json:"disease"`
	Score     float64 `json:"score"`
	Zone      string  `json:"zone"`
}

func (n notifier) NotifyRedZone(patientID, dayID int64, disease string, score float64) error {
	if n.endpoint == "" {
		return ErrEmptyEndpoint
	}

	body, err := json.Marshal(redZonePayload{
		PatientID: patientID,
		DayID:     dayID,
		Disease:   disease,
		Score:     score,
		Zone:      "red",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	return nil
}

func New(endpoint, token string) Notifier {
	return &notifier{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}
