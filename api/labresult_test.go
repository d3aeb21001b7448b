package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Tobrik/TMS/api/mocks"
	extmocks "github.com/Tobrik/TMS/external/mocks"
	"github.com/Tobrik/TMS/schema"
)

func labImageForm(t *testing.T, contentType string) (*bytes.Buffer, string) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}

	var encoded bytes.Buffer
	assert.NoError(t, jpeg.Encode(&encoded, img, nil))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="report.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(encoded.Bytes())
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadLabResult(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	mongo := mocks.NewMockMongoStore(ctl)
	ocr := extmocks.NewMockOCR(ctl)

	s := testServer(t, core, mongo)
	s.ocrClient = ocr

	doc := schema.LabResultDocument{
		TestType:       "Общий анализ крови",
		TestDate:       "2024-03-01",
		Interpretation: "Лейкоциты повышены.",
		Results: []schema.LabResultItem{
			{Name: "Лейкоциты", Value: "12.4", Unit: "10^9/л", ReferenceRange: "4-9", Status: "high"},
		},
	}

	ocr.EXPECT().ExtractLabResult(gomock.Any(), "image/jpeg").Return(&doc, nil).Times(1)
	mongo.EXPECT().SaveLabResult(int64(7), gomock.Any()).Return(&schema.LabResultRecord{
		ResultID:  "abc-123",
		PatientID: 7,
		TestType:  doc.TestType,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/lab-results", s.authMiddleware(), s.requirePatient(), s.uploadLabResult)

	body, contentType := labImageForm(t, "image/jpeg")
	req := httptest.NewRequest("POST", "/lab-results", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc-123", resp["result_id"])
	assert.Equal(t, "Общий анализ крови", resp["test_type"])
}

func TestUploadLabResultRejectsUnsupportedType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	s := testServer(t, core, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/lab-results", s.authMiddleware(), s.requirePatient(), s.uploadLabResult)

	body, contentType := labImageForm(t, "application/pdf")
	req := httptest.NewRequest("POST", "/lab-results", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s, schema.RolePatient, 7, 0))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1200), resp.Code)
}

func TestListLabResultsDoctorNeedsPatientID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTMSCore(ctl)
	mongo := mocks.NewMockMongoStore(ctl)
	s := testServer(t, core, mongo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/lab-results", s.authMiddleware(), s.listLabResults)

	req := httptest.NewRequest("GET", "/lab-results", nil)
	req.Header.Set("Authorization", authHeader(t, s, schema.RoleDoctor, 0, 3))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	// with patient_id the listing goes through
	mongo.EXPECT().ListLabResults(int64(7)).Return([]schema.LabResultView{}, nil).Times(1)

	req = httptest.NewRequest("GET", "/lab-results?patient_id=7", nil)
	req.Header.Set("Authorization", authHeader(t, s, schema.RoleDoctor, 0, 3))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
