package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/models/dto"
	"github.com/yigit/campus-survey/internal/pkg/apperrors"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleSubmissionError answers a failed write. Validation and storage failures are
// not distinguished on write endpoints: both produce 400 with the underlying message.
func HandleSubmissionError(c *gin.Context, err error) {
	logHandlerError(c, err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(err))
}

// HandleQueryError answers a failed read with 500, or 400 for a validation failure
func HandleQueryError(c *gin.Context, err error) {
	logHandlerError(c, err)

	status := http.StatusInternalServerError
	if apperrors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
}

// BindError turns a JSON binding failure into a ValidationError naming the field
func BindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidationError(typeErr.Field, "must be of type "+typeErr.Type.String())
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return apperrors.NewValidationError("", "timestamps must be RFC 3339, got "+timeErr.Value)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.NewValidationError("", "request body is not valid JSON")
	}
	return apperrors.NewValidationError("", err.Error())
}

func logHandlerError(c *gin.Context, err error) {
	event := logger.Error()
	if apperrors.IsValidation(err) {
		event = logger.Warn()
	}
	event.Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", GetRequestID(c)).
		Msg("Request failed")
}
