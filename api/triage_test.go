package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Tobrik/TMS/api/mocks"
	"github.com/Tobrik/TMS/schema"
)

func TestTriageRoster(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	core.EXPECT().TriageRoster().Return([]schema.TriagePatient{
		{PatientID: 1, FullName: "A", TopDisease: "Meningitis", LastScore: 0.1},
		{PatientID: 2, FullName: "B", TopDisease: "Influenza", LastScore: 0.3},
		{PatientID: 3, FullName: "C", TopDisease: "Eczema", LastScore: 0.65},
		{PatientID: 4, FullName: "D", LastDisease: "Pneumonia Croup Asthma", LastScore: 0.3},
		{PatientID: 5, FullName: "E"},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/triage", s.authMiddleware(), s.requireDoctor(), s.triageRoster)

	req := httptest.NewRequest("GET", "/triage", nil)
	req.Header.Set("Authorization", authHeader(t, s, schema.RoleDoctor, 0, 3))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Patients []schema.TriagePatient `json:"patients"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Patients, 5)

	zones := map[int64]string{}
	for _, p := range resp.Patients {
		zones[p.PatientID] = p.Zone
	}
	assert.Equal(t, "red", zones[1], "red override disease beats low score")
	assert.Equal(t, "yellow", zones[2], "yellow override disease")
	assert.Equal(t, "red", zones[3], "score above red threshold")
	assert.Equal(t, "yellow", zones[4], "first token of display string used as fallback")
	assert.Equal(t, "green", zones[5], "patient with no history")
}

func TestTriageRosterRequiresDoctor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/triage", s.authMiddleware(), s.requireDoctor(), s.triageRoster)

	req := httptest.NewRequest("GET", "/triage", nil)
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
