package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/arthajobs/web/internal/jobboard"
)

func TestHTTPStatusForTypedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindNotFound, http.StatusNotFound},
		{KindUnknown, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "msg")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusForJobboardErrors(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(fmt.Errorf("call: %w", jobboard.ErrSessionExpired)); got != http.StatusUnauthorized {
		t.Fatalf("HTTPStatus(session expired) = %d", got)
	}
	if got := HTTPStatus(fmt.Errorf("call: %w", jobboard.ErrUnavailable)); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus(unavailable) = %d", got)
	}
	rejected := &jobboard.RejectedError{Status: http.StatusConflict, Message: "duplicate"}
	if got := HTTPStatus(rejected); got != http.StatusConflict {
		t.Fatalf("HTTPStatus(rejected) = %d", got)
	}
}

func TestHTTPStatusNilAndUnknown(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d", got)
	}
	if got := HTTPStatus(fmt.Errorf("plain failure")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(plain) = %d", got)
	}
}
