package handler

import (
	"net/http"

	"github.com/tenpinclub/rollbook/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidScores      = apierr.CodeInvalidScores
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeCoachNotFound      = apierr.CodeCoachNotFound
	CodeLocationNotFound   = apierr.CodeLocationNotFound
	CodeGameNotFound       = apierr.CodeGameNotFound
	CodeScoreNotFound      = apierr.CodeScoreNotFound
	CodeEmailTaken         = apierr.CodeEmailTaken
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
