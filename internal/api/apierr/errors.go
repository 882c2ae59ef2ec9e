package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/services/auth"
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
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeEmptyName        = "EMPTY_NAME"
	CodeInvalidPayment   = "INVALID_PAYMENT"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodePlayerOnCourt    = "PLAYER_ON_COURT"
	CodeCourtNotFound    = "COURT_NOT_FOUND"
	CodeCourtLimit       = "COURT_LIMIT"
	CodeCourtNotFull     = "COURT_NOT_FULL"
	CodeCourtCoolingDown = "COURT_COOLING_DOWN"
	CodeInvalidPosition  = "INVALID_POSITION"
	CodeNoSavedSession   = "NO_SAVED_SESSION"
	CodePINRequired      = "PIN_REQUIRED"
	CodeInvalidPIN       = "INVALID_PIN"
	CodeInternalError    = "INTERNAL_ERROR"
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
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrInvalidPayment):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPayment, "Payment must be unpaid, online, or cash"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerOnCourt):
		return &httpError{http.StatusConflict, APIError{CodePlayerOnCourt, "Player is currently on a court"}}
	case errors.Is(err, model.ErrCourtNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCourtNotFound, "Court not found"}}
	case errors.Is(err, model.ErrCourtLimit):
		return &httpError{http.StatusConflict, APIError{CodeCourtLimit, "Court limit reached"}}
	case errors.Is(err, model.ErrCourtNotFull):
		return &httpError{http.StatusConflict, APIError{CodeCourtNotFull, "Court does not have a full game"}}
	case errors.Is(err, model.ErrCourtCoolingDown):
		return &httpError{http.StatusConflict, APIError{CodeCourtCoolingDown, "Court was just cleared"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid swap position"}}
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrEmptySnapshot):
		return &httpError{http.StatusNotFound, APIError{CodeNoSavedSession, "No saved session"}}

	// Map auth errors
	case errors.Is(err, auth.ErrPINRequired):
		return &httpError{http.StatusUnauthorized, APIError{CodePINRequired, "Organizer PIN required"}}
	case errors.Is(err, auth.ErrInvalidPIN):
		return &httpError{http.StatusForbidden, APIError{CodeInvalidPIN, "Incorrect organizer PIN"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
