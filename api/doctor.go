package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/store"
)

func (s *Server) doctorLogin(c *gin.Context) {
	var params struct {
		DoctorID int64  `json:"doctor_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	doctor, err := s.store.VerifyDoctorPassword(params.DoctorID, params.Password)
	if err == store.ErrInvalidCredentials {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	token, err := s.issueToken(schema.RoleDoctor, 0, doctor.DoctorID, doctor.FullName)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"login":        true,
		"access_token": token,
		"token_type":   "bearer",
		"doctor":       doctor,
	})
}

func (s *Server) listDoctors(c *gin.Context) {
	doctors, err := s.store.ListDoctors()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// updateDayByDoctor lets a doctor annotate an analysis day with a revised
// diagnosis or prescription.
func (s *Server) updateDayByDoctor(c *gin.Context) {
	dayID, err := strconv.ParseInt(c.Param("dayID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		DiseaseSetup *string `json:"disease_setup"`
		Recept       *string `json:"recept"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	claims := currentClaims(c)

	err = s.store.UpdateDayByDoctor(dayID, claims.DoctorID, params.DiseaseSetup, params.Recept)
	switch err {
	case nil:
	case store.ErrEmptyUpdate:
		abortWithEncoding(c, http.StatusBadRequest, errorNothingToUpdate)
		return
	case store.ErrDayNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorDayNotFound)
		return
	default:
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}
