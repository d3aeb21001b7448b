package api

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tobrik/TMS/external/vision"
	"github.com/Tobrik/TMS/schema"
)

const maxLabImageSize = 10 << 20

// headerRedactionRatio is the fraction of image height blurred before the
// image leaves the server. Lab report headers carry the patient's name,
// birth date and clinic details.
const headerRedactionRatio = 0.18

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// uploadLabResult accepts a lab report photograph, blurs the identifying
// header, extracts the measurements through the vision service and stores
// the structured result.
func (s *Server) uploadLabResult(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedImageTypes[mimeType] {
		abortWithEncoding(c, http.StatusBadRequest, errorUnsupportedImageType)
		return
	}

	raw, err := ioutil.ReadAll(io.LimitReader(file, maxLabImageSize+1))
	if shouldInterupt(err, c) {
		return
	}
	if len(raw) > maxLabImageSize {
		abortWithEncoding(c, http.StatusBadRequest, errorImageTooLarge)
		return
	}

	redacted, err := redactImageHeader(raw)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnreadableImage, err)
		return
	}

	doc, err := s.ocrClient.ExtractLabResult(redacted, "image/jpeg")
	if err != nil {
		if errors.Is(err, vision.ErrUnreadableImage) {
			abortWithEncoding(c, http.StatusUnprocessableEntity, errorUnreadableImage, err)
			return
		}
		log.WithError(err).Error("lab result extraction")
		abortWithEncoding(c, http.StatusBadGateway, errorOCRUnavailable)
		return
	}
	doc.ImageFilename = fmt.Sprintf("%s.jpg", uuid.New().String())

	claims := currentClaims(c)
	record, err := s.mongoStore.SaveLabResult(claims.PatientID, *doc)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result_id":      record.ResultID,
		"test_type":      doc.TestType,
		"test_date":      doc.TestDate,
		"results":        doc.Results,
		"interpretation": doc.Interpretation,
	})
}

// listLabResults returns stored lab results. A doctor passes ?patient_id,
// a patient always gets their own.
func (s *Server) listLabResults(c *gin.Context) {
	claims := currentClaims(c)

	patientID := claims.PatientID
	if claims.Role == schema.RoleDoctor {
		var err error
		patientID, err = strconv.ParseInt(c.Query("patient_id"), 10, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	results, err := s.mongoStore.ListLabResults(patientID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// redactImageHeader blurs the top band of the image and re-encodes it as
// JPEG.
func redactImageHeader(raw []byte) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	headerHeight := int(float64(bounds.Dy()) * headerRedactionRatio)
	if headerHeight > 0 {
		headerRect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+headerHeight)
		blurred := imaging.Blur(imaging.Crop(src, headerRect), 30)
		src = imaging.Paste(src, blurred, headerRect.Min)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
