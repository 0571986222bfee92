package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/services/auth"
	"github.com/tenpinclub/rollbook/internal/services/roster"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidScores      = "INVALID_SCORES"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeCoachNotFound      = "COACH_NOT_FOUND"
	CodeLocationNotFound   = "LOCATION_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeScoreNotFound      = "SCORE_NOT_FOUND"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrCoachNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCoachNotFound, "No coach with that code"}}
	case errors.Is(err, model.ErrLocationNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLocationNotFound, "Location not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrScoreNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeScoreNotFound, "Score not found"}}
	case errors.Is(err, model.ErrEmailTaken):
		return &httpError{http.StatusBadRequest, APIError{CodeEmailTaken, "Email already registered"}}

	// Map auth errors. The three sign-in failure modes collapse into one
	// response so the body never reveals whether an email is registered.
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrNoPasswordSet),
		errors.Is(err, auth.ErrNoSuchAccount):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}

	// Map roster errors
	case errors.Is(err, roster.ErrInvalidScores):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScores, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Insufficient role for this action"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
