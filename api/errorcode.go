package api

import (
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/series"
	"github.com/wirvsvirus/measures-dashboard/timeline"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: loader.ErrDataUnavailable.Error(),
		1101: timeline.ErrEmptyTimeline.Error(),
		1102: series.ErrUnknownPopulation.Error(),
		1103: "unknown geographic level",
		1104: "no coordinates for geographic level",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorDataUnavailable     = errorJSON(1100)
	errorEmptyTimeline       = errorJSON(1101)
	errorUnknownPopulation   = errorJSON(1102)
	errorUnknownLevel        = errorJSON(1103)
	errorMapLayerUnavailable = errorJSON(1104)
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
