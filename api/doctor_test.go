package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Tobrik/TMS/api/mocks"
	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/store"
)

func TestUpdateDayByDoctor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	setup := "Influenza"
	core.EXPECT().
		UpdateDayByDoctor(int64(42), int64(3), &setup, (*string)(nil)).
		Return(nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/days/:dayID", s.authMiddleware(), s.requireDoctor(), s.updateDayByDoctor)

	body, _ := json.Marshal(map[string]interface{}{
		"disease_setup": setup,
	})
	req := httptest.NewRequest("PATCH", "/days/42", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s, schema.RoleDoctor, 0, 3))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateDayByDoctorNothingToUpdate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	core.EXPECT().
		UpdateDayByDoctor(int64(42), int64(3), (*string)(nil), (*string)(nil)).
		Return(store.ErrEmptyUpdate).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/days/:dayID", s.authMiddleware(), s.requireDoctor(), s.updateDayByDoctor)

	req := httptest.NewRequest("PATCH", "/days/42", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", authHeader(t, s, schema.RoleDoctor, 0, 3))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1104), resp.Code)
}
