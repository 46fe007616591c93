package utils

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// FieldError names the offending field of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is a status-coded application error. Details carries field-level
// validation errors when present.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string, details ...FieldError) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Details: details}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func NewPayloadTooLargeError(message string) *AppError {
	return &AppError{Code: http.StatusRequestEntityTooLarge, Message: message}
}

func NewTooManyRequestsError(message string) *AppError {
	return &AppError{Code: http.StatusTooManyRequests, Message: message}
}

func NewLockedError(message string) *AppError {
	return &AppError{Code: http.StatusLocked, Message: message}
}

func NewUpstreamError(message string) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message}
}

func NewUpstreamTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// HandleError writes the {success:false, error, details?} envelope for err.
// Client errors keep their message; unexpected errors are logged in full and
// masked in production so internals never leak.
func HandleError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		slog.Error("unhandled error", "path", c.FullPath(), "error", err)
		appErr = NewInternalError("Internal server error")
	}

	message := appErr.Message
	if appErr.Code >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "status", appErr.Code, "error", appErr.Message)
		if os.Getenv("APP_ENV") == "production" {
			message = ErrInternal
		}
	}

	body := gin.H{"success": false, "error": message}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.AbortWithStatusJSON(appErr.Code, body)
}

// HandleSuccess writes a success envelope. Fields are merged into the
// top-level object next to success:true.
func HandleSuccess(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}
