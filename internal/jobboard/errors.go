package jobboard

import "errors"

// ErrSessionExpired indicates the server rejected a previously valid bearer
// token. The client's on-unauthorized hook has already fired when a call
// returns this error.
var ErrSessionExpired = errors.New("session expired")

// ErrUnavailable indicates the job board could not be reached or answered
// with a server failure. Callers surface it as a transient condition.
var ErrUnavailable = errors.New("job board is unavailable")

// RejectedError carries a server-reported 4xx rejection. Message is the
// human-readable text from the response body, surfaced verbatim.
type RejectedError struct {
	Status  int
	Message string
}

// Error returns the server-reported message.
func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "request rejected by the job board"
	}
	return e.Message
}
