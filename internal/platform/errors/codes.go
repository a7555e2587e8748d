// Package errors provides structured error handling for tracker services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Reference lookup errors
	CodeLookupNotFound    Code = "LOOKUP_NOT_FOUND"
	CodeLookupAmbiguous   Code = "LOOKUP_AMBIGUOUS"
	CodeZeroNationalTotal Code = "ZERO_NATIONAL_TOTAL"

	// Input errors
	CodeInvalidSelection Code = "INVALID_SELECTION"
	CodeUnknownSymptom   Code = "UNKNOWN_SYMPTOM"

	// Loading errors
	CodeReferenceLoad      Code = "REFERENCE_LOAD"
	CodeTrackerUnavailable Code = "TRACKER_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidSelection, CodeUnknownSymptom:
		return http.StatusBadRequest

	// The selection was valid but the reference data cannot answer it.
	case CodeLookupNotFound, CodeLookupAmbiguous, CodeZeroNationalTotal:
		return http.StatusUnprocessableEntity

	case CodeTrackerUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// IsLookup reports whether c classifies a reference table lookup failure.
func (c Code) IsLookup() bool {
	switch c {
	case CodeLookupNotFound, CodeLookupAmbiguous, CodeZeroNationalTotal:
		return true
	default:
		return false
	}
}
