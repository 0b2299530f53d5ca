package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Standardized APIError response
type APIError struct {
	StatusCode int    `json:"-"` // HTTP status code, not included in JSON response body for error itself
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Field      string `json:"field,omitempty"` // Offending request field for validation failures
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

// NewFieldError creates a 400 APIError bound to a single request field.
func NewFieldError(field, message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrCodeValidationFailed,
		Message:    message,
		Field:      field,
	}
}

// RespondWithError sends a standardized JSON error response
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}

const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeUpstreamFailed      = "UPSTREAM_FAILED"
)

// Helper to return a standard validation error
func RespondValidationFailed(c *gin.Context, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Input validation failed", details))
}

// RespondFieldInvalid aborts with a 400 naming the offending field.
func RespondFieldInvalid(c *gin.Context, field, message string) {
	RespondWithError(c, NewFieldError(field, message))
}
