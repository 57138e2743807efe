package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/api/middleware"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	errCodeInternalError      ErrorCode = "internal_error"
	errCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondUnavailable sends a 503 Service Unavailable response and logs the error
func respondUnavailable(c *gin.Context, err error, message string) {
	logger.WarnCtx(c.Request.Context(), message,
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err))
	c.Header("Retry-After", "1")
	respondWithError(c, http.StatusServiceUnavailable, errCodeServiceUnavailable, message)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)))
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a service error to its HTTP response
func respondDomainError(c *gin.Context, err error, notFoundMessage string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(c, notFoundMessage)
	case errors.Is(err, domain.ErrInvalidArgument):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		respondUnavailable(c, err, "Award service temporarily unavailable")
	default:
		respondInternalError(c, err, "Internal server error", fields...)
	}
}
