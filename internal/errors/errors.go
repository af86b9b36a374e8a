package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrGuideNotFound is returned when a guide or guide profile is not found.
	ErrGuideNotFound = errors.New("guide not found")
	// ErrConnectionNotFound is returned when a connection is not found.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrPlaceNotFound is returned when a place is not found.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrItineraryNotFound is returned when an itinerary is not found.
	ErrItineraryNotFound = errors.New("itinerary not found")
	// ErrNotPermitted is returned when the acting user may not perform the
	// requested transition. Also returned to non-participants, so a probe
	// cannot learn whether a connection id exists.
	ErrNotPermitted = errors.New("not permitted")
	// ErrInvalidTransition is returned on a transition out of a terminal status.
	ErrInvalidTransition = errors.New("connection already resolved")
	// ErrDuplicatePending is returned when the tourist already has a pending
	// request to the same guide.
	ErrDuplicatePending = errors.New("a pending request to this guide already exists")
	// ErrInvalidRole is returned when a connection does not run tourist -> guide.
	ErrInvalidRole = errors.New("connections must be sent by a tourist to a guide")
	// ErrInvalidCoordinates is returned when latitude/longitude are out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrGuideNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "GUIDE_NOT_FOUND")
	case ErrConnectionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONNECTION_NOT_FOUND")
	case ErrPlaceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLACE_NOT_FOUND")
	case ErrItineraryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITINERARY_NOT_FOUND")
	case ErrNotPermitted:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_PERMITTED")
	case ErrInvalidTransition:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_RESOLVED")
	case ErrDuplicatePending:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_PENDING")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case ErrInvalidCoordinates:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COORDINATES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
