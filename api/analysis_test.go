package api

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
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

func testServer(t *testing.T, core *mocks.MockTMSCore, mongo *mocks.MockMongoStore) *Server {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	return &Server{
		store:         core,
		mongoStore:    mongo,
		jwtPrivateKey: key,
	}
}

func authHeader(t *testing.T, s *Server, role string, patientID, doctorID int64) string {
	token, err := s.issueToken(role, patientID, doctorID, "test")
	assert.NoError(t, err)
	return "Bearer " + token
}

func maxSeverities() []int {
	v := make([]int, len(schema.SymptomCodes))
	for i := range v {
		v[i] = schema.MaxSeverity
	}
	return v
}

func TestAnalyzeSymptoms(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	core.EXPECT().
		InsertDiaryDay(int64(7), maxSeverities(),
			"Gastroenteritis Croup Scarlet Fever", "Gastroenteritis", 1.0,
			schema.DiagnoseNothing, schema.DiseaseRecommendations["Gastroenteritis"]).
		Return(int64(42), nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analysis", s.authMiddleware(), s.requirePatient(), s.analyzeSymptoms)

	body, _ := json.Marshal(map[string]interface{}{
		"symptoms": maxSeverities(),
	})
	req := httptest.NewRequest("POST", "/analysis", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["day"])
	assert.Equal(t, "Gastroenteritis Croup Scarlet Fever", resp["preliminary_diagnose"])
	assert.Equal(t, 1.0, resp["score"])
	assert.Equal(t, "Gastroenteritis", resp["top1"])
	assert.Equal(t, "Croup", resp["top2"])
	assert.Equal(t, "Scarlet Fever", resp["top3"])
	assert.Equal(t, 1.0, resp["top1_score"])
	assert.Equal(t, schema.DiseaseRecommendations["Gastroenteritis"], resp["recept"])
}

func TestAnalyzeSymptomsOmittedSetupDefaultsToNothing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	// An all-zero vector scores below the confidence floor. With the
	// diagnose_setup field omitted, the handler must fall back to the
	// "Nothing" sentinel and decline to assert a differential.
	zeros := make([]int, len(schema.SymptomCodes))
	core.EXPECT().
		InsertDiaryDay(int64(7), zeros,
			schema.DiagnoseNothing, "Type 1 Diabetes", gomock.Any(),
			schema.DiagnoseNothing, schema.DiseaseRecommendations["Type 1 Diabetes"]).
		Return(int64(42), nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analysis", s.authMiddleware(), s.requirePatient(), s.analyzeSymptoms)

	body, _ := json.Marshal(map[string]interface{}{
		"symptoms": zeros,
	})
	req := httptest.NewRequest("POST", "/analysis", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.DiagnoseNothing, resp["preliminary_diagnose"])
	assert.Less(t, resp["score"].(float64), 0.2)
}

func TestAnalyzeSymptomsScoresSeverityAboveScale(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	// Only the vector length is validated. A value beyond the reporting
	// scale is scored as submitted.
	vector := make([]int, len(schema.SymptomCodes))
	vector[0] = 5
	core.EXPECT().
		InsertDiaryDay(int64(7), vector,
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(42), nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analysis", s.authMiddleware(), s.requirePatient(), s.analyzeSymptoms)

	body, _ := json.Marshal(map[string]interface{}{
		"symptoms": vector,
	})
	req := httptest.NewRequest("POST", "/analysis", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAnalyzeSymptomsRepeatCreatesNewDay(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	gomock.InOrder(
		core.EXPECT().
			InsertDiaryDay(int64(7), maxSeverities(),
				"Gastroenteritis Croup Scarlet Fever", "Gastroenteritis", 1.0,
				schema.DiagnoseNothing, schema.DiseaseRecommendations["Gastroenteritis"]).
			Return(int64(41), nil),
		core.EXPECT().
			InsertDiaryDay(int64(7), maxSeverities(),
				"Gastroenteritis Croup Scarlet Fever", "Gastroenteritis", 1.0,
				schema.DiagnoseNothing, schema.DiseaseRecommendations["Gastroenteritis"]).
			Return(int64(42), nil),
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analysis", s.authMiddleware(), s.requirePatient(), s.analyzeSymptoms)

	days := []float64{}
	scores := []float64{}
	for i := 0; i < 2; i++ {
		body, _ := json.Marshal(map[string]interface{}{
			"symptoms": maxSeverities(),
		})
		req := httptest.NewRequest("POST", "/analysis", bytes.NewReader(body))
		req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		days = append(days, resp["day"].(float64))
		scores = append(scores, resp["score"].(float64))
	}

	// Identical vectors never deduplicate, but their scores agree.
	assert.NotEqual(t, days[0], days[1])
	assert.Equal(t, scores[0], scores[1])
}

func TestAnalyzeSymptomsWrongVectorLength(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analysis", s.authMiddleware(), s.requirePatient(), s.analyzeSymptoms)

	body, _ := json.Marshal(map[string]interface{}{
		"symptoms": []int{1, 2, 3},
	})
	req := httptest.NewRequest("POST", "/analysis", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1012), resp.Code)
}

func TestAnalyzeSymptomsRequiresPatientRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analysis", s.authMiddleware(), s.requirePatient(), s.analyzeSymptoms)

	body, _ := json.Marshal(map[string]interface{}{
		"symptoms": maxSeverities(),
	})
	req := httptest.NewRequest("POST", "/analysis", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s, schema.RoleDoctor, 0, 3))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
