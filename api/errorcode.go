package api

import "github.com/Tobrik/TMS/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid credentials",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "access denied",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "symptom vector must carry a value for every tracked symptom",

		1100: "patient not found",
		1101: "doctor not found",
		1102: "diary day not found",
		1103: store.ErrUnknownSymptomCode.Error(),
		1104: store.ErrEmptyUpdate.Error(),
		1105: "patient name already registered",

		1200: "unsupported file type, use JPG, PNG or WebP",
		1201: "file too large",
		1202: "image could not be read",
		1203: "lab recognition service unavailable",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorAccessDenied               = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorBadSymptomVector   = errorJSON(1012)

	errorPatientNotFound    = errorJSON(1100)
	errorDoctorNotFound     = errorJSON(1101)
	errorDayNotFound        = errorJSON(1102)
	errorUnknownSymptomCode = errorJSON(1103)
	errorNothingToUpdate    = errorJSON(1104)
	errorPatientNameTaken   = errorJSON(1105)

	errorUnsupportedImageType = errorJSON(1200)
	errorImageTooLarge        = errorJSON(1201)
	errorUnreadableImage      = errorJSON(1202)
	errorOCRUnavailable       = errorJSON(1203)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
