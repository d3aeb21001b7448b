package api

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/store"
)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

// patientRegister creates a patient account and signs them in.
func (s *Server) patientRegister(c *gin.Context) {
	var params struct {
		Name     string `json:"name" binding:"required"`
		City     string `json:"city"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Password) < 8 || len(params.Password) > 64 ||
		!hasLetter.MatchString(params.Password) || !hasDigit.MatchString(params.Password) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	patient, err := s.store.CreatePatient(params.Name, params.City, params.Password)
	if shouldInterupt(err, c) {
		return
	}

	token, err := s.issueToken(schema.RolePatient, patient.PatientID, 0, patient.FullName)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient_id":   patient.PatientID,
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) patientLogin(c *gin.Context) {
	var params struct {
		PatientID int64  `json:"patient_id" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	patient, err := s.store.VerifyPatientPassword(params.PatientID, params.Password)
	if err == store.ErrInvalidCredentials {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	token, err := s.issueToken(schema.RolePatient, patient.PatientID, 0, patient.FullName)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"login":        true,
		"access_token": token,
		"token_type":   "bearer",
	})
}

// patientInfo returns a patient's profile. Doctors can read any patient,
// a patient only themselves.
func (s *Server) patientInfo(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !canAccessPatient(currentClaims(c), patientID) {
		abortWithEncoding(c, http.StatusForbidden, errorAccessDenied)
		return
	}

	patient, err := s.store.GetPatient(patientID)
	if err == store.ErrPatientNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorPatientNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}
