package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/store"
)

const defaultHistoryLimit = 30

// patientHistory returns the recent analysis days of a patient, newest
// first.
func (s *Server) patientHistory(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !canAccessPatient(currentClaims(c), patientID) {
		abortWithEncoding(c, http.StatusForbidden, errorAccessDenied)
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > 100 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	history, err := s.store.GetPatientHistory(patientID, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": history})
}

func (s *Server) daySymptoms(c *gin.Context) {
	dayID, err := strconv.ParseInt(c.Param("dayID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	claims := currentClaims(c)
	if claims.Role == schema.RolePatient {
		owned, err := s.store.DayBelongsToPatient(dayID, claims.PatientID)
		if err == store.ErrDayNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorDayNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}
		if !owned {
			abortWithEncoding(c, http.StatusForbidden, errorAccessDenied)
			return
		}
	}

	symptoms, err := s.store.GetDaySymptoms(dayID)
	if err == store.ErrDayNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorDayNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"symptoms": symptoms})
}

// symptomGraph returns the severity time series of one symptom for a
// patient.
func (s *Server) symptomGraph(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !canAccessPatient(currentClaims(c), patientID) {
		abortWithEncoding(c, http.StatusForbidden, errorAccessDenied)
		return
	}

	points, err := s.store.GetSymptomGraph(patientID, c.Param("code"))
	if err == store.ErrUnknownSymptomCode {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownSymptomCode)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"symptoms_arr": points})
}

// saveExplanation attaches free text to a diary day. A patient annotates
// their own days, a doctor any day; the text lands in the column matching
// the author's role.
func (s *Server) saveExplanation(c *gin.Context) {
	var params struct {
		DayID       int64  `json:"day_id" binding:"required"`
		Explanation string `json:"explanation" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	claims := currentClaims(c)
	if claims.Role == schema.RolePatient {
		owned, err := s.store.DayBelongsToPatient(params.DayID, claims.PatientID)
		if err == store.ErrDayNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorDayNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}
		if !owned {
			abortWithEncoding(c, http.StatusForbidden, errorAccessDenied)
			return
		}
	}

	err := s.store.SaveExplanation(params.DayID, claims.Role, params.Explanation)
	if err == store.ErrDayNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorDayNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
