// Package apply drives the per-posting job-application workflow.
package apply

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/arthajobs/web/internal/session/domain"
)

// State describes the lifecycle of a single application draft.
type State int

const (
	// StateUnspecified represents an invalid state value.
	StateUnspecified State = iota
	// StateIdle indicates no draft is open for the posting.
	StateIdle
	// StateEditing indicates the apply form is open with an in-progress letter.
	StateEditing
	// StateSubmitting indicates a submission is in flight.
	StateSubmitting
	// StateSucceeded indicates the application was accepted. Terminal.
	StateSucceeded
	// StateFailed indicates the last submission failed; the letter is kept.
	StateFailed
)

// String returns a stable label for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unspecified"
	}
}

var (
	// ErrSignedOut indicates the apply interaction requires a session.
	// Callers route this through the access guard's login redirect.
	ErrSignedOut = errors.New("sign in to apply")
	// ErrNotEligible indicates the signed-in role cannot apply to postings.
	ErrNotEligible = errors.New("only job seekers can apply for jobs")
	// ErrEmptyCoverLetter indicates a submit with no cover letter text.
	ErrEmptyCoverLetter = errors.New("cover letter is required")
	// ErrSessionExpired indicates the submission outcome arrived for a
	// session that no longer exists.
	ErrSessionExpired = errors.New("session expired during submission")
	// ErrInvalidTransition indicates the requested transition is not
	// allowed from the current state.
	ErrInvalidTransition = errors.New("transition is not allowed")
)

// Submitter performs the external application call.
type Submitter interface {
	CreateApplication(ctx context.Context, jobID, coverLetter string) error
}

// Sessions exposes the read side of the session context.
type Sessions interface {
	Current() (domain.Session, bool)
}

// Workflow owns the draft for one job posting. It is never shared across
// postings and never persisted; tearing down the hosting view calls Close.
type Workflow struct {
	jobID     string
	sessions  Sessions
	submitter Submitter

	mu          sync.Mutex
	state       State
	coverLetter string
	failure     error
	attempt     int
	closed      bool
}

// New creates an idle workflow for the given posting.
func New(jobID string, sessions Sessions, submitter Submitter) *Workflow {
	return &Workflow{
		jobID:     jobID,
		sessions:  sessions,
		submitter: submitter,
		state:     StateIdle,
	}
}

// JobID returns the posting this draft belongs to.
func (w *Workflow) JobID() string { return w.jobID }

// State returns the current draft state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// CoverLetter returns the in-progress letter text.
func (w *Workflow) CoverLetter() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.coverLetter
}

// Err returns the failure recorded by the last submission, if any.
func (w *Workflow) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

// Open moves Idle to Editing. The session must be present and its role must
// be jobseeker; otherwise the draft stays Idle.
func (w *Workflow) Open() error {
	session, present := w.currentSession()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.state != StateIdle {
		return ErrInvalidTransition
	}
	if !present {
		return ErrSignedOut
	}
	if session.Identity.Role != domain.RoleJobSeeker {
		return ErrNotEligible
	}
	w.state = StateEditing
	return nil
}

// EditCoverLetter replaces the in-progress letter text while Editing.
func (w *Workflow) EditCoverLetter(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.state != StateEditing {
		return ErrInvalidTransition
	}
	w.coverLetter = text
	return nil
}

// Submit sends the draft to the server. Submitting with an empty trimmed
// letter is rejected locally with no external call. A submit while another
// submission is in flight is a no-op, so rapid repeated clicks produce
// exactly one call. The outcome of a submission issued under a session that
// has since ended, or for a draft torn down mid-flight, is discarded.
func (w *Workflow) Submit(ctx context.Context) error {
	session, present := w.currentSession()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	if w.state == StateSubmitting {
		w.mu.Unlock()
		return nil
	}
	if w.state != StateEditing {
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	if strings.TrimSpace(w.coverLetter) == "" {
		w.mu.Unlock()
		return ErrEmptyCoverLetter
	}
	if !present {
		w.mu.Unlock()
		return ErrSignedOut
	}
	issuedUnder := session.Identity.ID
	letter := w.coverLetter
	w.attempt++
	attempt := w.attempt
	w.state = StateSubmitting
	w.failure = nil
	w.mu.Unlock()

	err := w.submitter.CreateApplication(ctx, w.jobID, letter)
	return w.complete(attempt, issuedUnder, err)
}

// Retry returns a failed draft to Editing with its letter preserved.
func (w *Workflow) Retry() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.state != StateFailed {
		return ErrInvalidTransition
	}
	w.state = StateEditing
	w.failure = nil
	return nil
}

// Cancel discards the draft and returns to Idle.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || (w.state != StateEditing && w.state != StateFailed) {
		return ErrInvalidTransition
	}
	w.state = StateIdle
	w.coverLetter = ""
	w.failure = nil
	return nil
}

// Close tears the draft down when its hosting view goes away. Any in-flight
// submission outcome is discarded silently. Close is idempotent.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// complete applies a submission outcome unless the draft was superseded,
// torn down, or its session ended mid-flight.
func (w *Workflow) complete(attempt int, issuedUnder string, err error) error {
	session, present := w.currentSession()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.attempt != attempt || w.state != StateSubmitting {
		return err
	}
	if !present || session.Identity.ID != issuedUnder {
		// The outcome belongs to credentials that are no longer valid;
		// never report success under a different identity.
		w.state = StateFailed
		w.failure = ErrSessionExpired
		return ErrSessionExpired
	}
	if err != nil {
		w.state = StateFailed
		w.failure = err
		return err
	}
	w.state = StateSucceeded
	w.coverLetter = ""
	return nil
}

func (w *Workflow) currentSession() (domain.Session, bool) {
	if w.sessions == nil {
		return domain.Session{}, false
	}
	return w.sessions.Current()
}
