package alert_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tobrik/TMS/external/alert"
)

func TestNotifyRedZone(t *testing.T) {
	var received map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	n := alert.New(ts.URL, "secret")
	err := n.NotifyRedZone(7, 42, "Meningitis", 0.93)
	assert.Nil(t, err, "wrong NotifyRedZone")
	assert.Equal(t, "Meningitis", received["disease"])
	assert.Equal(t, "red", received["zone"])
	assert.Equal(t, float64(7), received["patient_id"])
}

func TestNotifyRedZoneBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	n := alert.New(ts.URL, "")
	err := n.NotifyRedZone(7, 42, "Meningitis", 0.93)
	assert.Error(t, err)
}

func TestNotifyRedZoneEmptyEndpoint(t *testing.T) {
	n := alert.New("", "")
	assert.Equal(t, alert.ErrEmptyEndpoint, n.NotifyRedZone(1, 1, "Meningitis", 1))
}
