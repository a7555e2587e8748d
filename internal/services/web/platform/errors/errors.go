// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/covidtracker/internal/platform/errors"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindInvalidInput    Kind = "invalid_input"
	KindUnprocessable   Kind = "unprocessable"
	KindUnavailable     Kind = "unavailable"
	KindNotFound        Kind = "not_found"
	KindMethodForbidden Kind = "method_not_allowed"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// KindOf classifies err, falling back to the domain code of the error chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	switch code := domainerrors.CodeOf(err); {
	case code == domainerrors.CodeInvalidSelection, code == domainerrors.CodeUnknownSymptom:
		return KindInvalidInput
	case code.IsLookup():
		return KindUnprocessable
	case code == domainerrors.CodeTrackerUnavailable:
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodForbidden:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns a user-safe message for err.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return "That selection is not one of the offered options."
	case KindUnprocessable:
		return "That selection is not covered by the reference data, so no estimate can be made."
	case KindUnavailable:
		return "Live tracking data is temporarily unavailable. Please try again shortly."
	}
	return http.StatusText(HTTPStatus(err))
}
