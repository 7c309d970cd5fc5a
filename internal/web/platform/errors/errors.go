// Package errors defines typed web application errors.
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/arthajobs/web/internal/jobboard"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
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

// HTTPStatus maps an error to an HTTP status code. Remote job-board failures
// map through the client taxonomy: an expired session reads as unauthorized,
// a rejection keeps the server's status, unavailability reads as 503.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case KindInvalidInput:
			return http.StatusBadRequest
		case KindUnauthorized:
			return http.StatusUnauthorized
		case KindForbidden:
			return http.StatusForbidden
		case KindUnavailable:
			return http.StatusServiceUnavailable
		case KindNotFound:
			return http.StatusNotFound
		default:
			return http.StatusInternalServerError
		}
	}
	if stderrors.Is(err, jobboard.ErrSessionExpired) {
		return http.StatusUnauthorized
	}
	if stderrors.Is(err, jobboard.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	var rejected *jobboard.RejectedError
	if stderrors.As(err, &rejected) && rejected.Status >= http.StatusBadRequest {
		return rejected.Status
	}
	return http.StatusInternalServerError
}
