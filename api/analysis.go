package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/Tobrik/TMS/background"
	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/score"
)

// analyzeSymptoms scores a severity vector against the disease catalog,
// persists the result as a new diary day and returns the ranked predictions.
// Every call creates a new day, even for an identical vector.
func (s *Server) analyzeSymptoms(c *gin.Context) {
	var params struct {
		Symptoms      []int  `json:"symptoms" binding:"required"`
		DiagnoseSetup string `json:"diagnose_setup"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.DiagnoseSetup == "" {
		params.DiagnoseSetup = schema.DiagnoseNothing
	}

	// Only the vector length is validated; individual values outside the
	// reporting scale are scored as submitted.
	if len(params.Symptoms) != len(schema.SymptomCodes) {
		abortWithEncoding(c, http.StatusBadRequest, errorBadSymptomVector)
		return
	}

	top, err := score.Predict(schema.DiseaseModels, params.Symptoms)
	if shouldInterupt(err, c) {
		return
	}

	composite := score.Composite(top)
	diagnose := score.PreliminaryDiagnose(top, composite, params.DiagnoseSetup)
	recept := score.Recommendation(top[0].Disease)

	claims := currentClaims(c)
	dayID, err := s.store.InsertDiaryDay(
		claims.PatientID, params.Symptoms,
		diagnose, top[0].Disease, composite,
		params.DiagnoseSetup, recept)
	if shouldInterupt(err, c) {
		return
	}

	if score.Zone(top[0].Disease, composite) == score.ZoneRed {
		s.enqueueRedZoneAlert(claims.PatientID, dayID, top[0].Disease, composite)
	}

	c.JSON(http.StatusOK, gin.H{
		"day":                  dayID,
		"preliminary_diagnose": diagnose,
		"recept":               recept,
		"score":                composite,
		"top1":                 top[0].Disease,
		"top2":                 top[1].Disease,
		"top3":                 top[2].Disease,
		"top1_score":           top[0].Score,
		"top2_score":           top[1].Score,
		"top3_score":           top[2].Score,
	})
}

// enqueueRedZoneAlert queues an on-call notification. Queue problems are
// logged and never fail the analysis request.
func (s *Server) enqueueRedZoneAlert(patientID, dayID int64, disease string, composite float64) {
	if s.background == nil {
		return
	}

	_, err := s.background.SendTask(&tasks.Signature{
		Name: background.TaskNotifyRedZone,
		Args: []tasks.Arg{
			{Type: "int64", Value: patientID},
			{Type: "int64", Value: dayID},
			{Type: "string", Value: disease},
			{Type: "float64", Value: composite},
		},
	})
	if err != nil {
		log.WithError(err).WithField("day_id", dayID).Error("enqueue red zone alert")
	}
}
