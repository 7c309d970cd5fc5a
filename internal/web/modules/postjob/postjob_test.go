package postjob

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
)

type fakeBoard struct {
	created jobboard.Job
	err     error
	input   jobboard.JobInput
	calls   int
}

func (f *fakeBoard) CreateJob(ctx context.Context, input jobboard.JobInput) (jobboard.Job, error) {
	f.calls++
	f.input = input
	return f.created, f.err
}

type fakeSessions struct {
	session domain.Session
	present bool
}

func (f *fakeSessions) Current() (domain.Session, bool) {
	return f.session, f.present
}

func employerSessions() *fakeSessions {
	return &fakeSessions{
		session: domain.Session{
			Identity: domain.Identity{ID: "e1", Name: "Birla", Role: domain.RoleEmployer},
			Token:    "tok",
		},
		present: true,
	}
}

func mountPostJob(t *testing.T, board *fakeBoard) http.Handler {
	t.Helper()
	mount, err := New(board).Mount(module.Dependencies{Sessions: employerSessions()})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func postForm(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/app/post-job", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateRedirectsToNewPosting(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{created: jobboard.Job{ID: "J9"}}
	handler := mountPostJob(t, board)

	rec := postForm(handler, url.Values{
		"title":            {"Backend Engineer"},
		"company":          {"Acme"},
		"description":      {"Build services."},
		"location":         {"Remote"},
		"requirements":     {"Go\nSQL"},
		"skills":           {"go, sql"},
		"numberOfOpenings": {"2"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/jobs/J9" {
		t.Fatalf("Location = %q, want %q", got, "/jobs/J9")
	}
	if board.calls != 1 {
		t.Fatalf("calls = %d, want 1", board.calls)
	}
	if !reflect.DeepEqual(board.input.Requirements, []string{"Go", "SQL"}) {
		t.Fatalf("requirements = %v, want [Go SQL]", board.input.Requirements)
	}
	if !reflect.DeepEqual(board.input.Skills, []string{"go", "sql"}) {
		t.Fatalf("skills = %v, want [go sql]", board.input.Skills)
	}
	if board.input.NumberOfOpenings != 2 {
		t.Fatalf("openings = %d, want 2", board.input.NumberOfOpenings)
	}
}

func TestCreateMissingFieldsRejectedLocally(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{}
	handler := mountPostJob(t, board)

	rec := postForm(handler, url.Values{"title": {"Backend Engineer"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if board.calls != 0 {
		t.Fatalf("calls = %d, want 0", board.calls)
	}
}

func TestCreateRejectionRendersServerMessage(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{err: &jobboard.RejectedError{Status: http.StatusBadRequest, Message: "Company is blocked"}}
	handler := mountPostJob(t, board)

	rec := postForm(handler, url.Values{
		"title":       {"Backend Engineer"},
		"company":     {"Acme"},
		"description": {"Build services."},
		"location":    {"Remote"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "Company is blocked") {
		t.Fatal("expected server rejection message in body")
	}
}

func TestCreateExpiredSessionRedirectsToLogin(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{err: jobboard.ErrSessionExpired}
	handler := mountPostJob(t, board)

	rec := postForm(handler, url.Values{
		"title":       {"Backend Engineer"},
		"company":     {"Acme"},
		"description": {"Build services."},
		"location":    {"Remote"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/login?expired=1" {
		t.Fatalf("Location = %q, want %q", got, "/login?expired=1")
	}
}

func TestFormDefaultsToOneOpening(t *testing.T) {
	t.Parallel()

	handler := mountPostJob(t, &fakeBoard{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/post-job", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `name="numberOfOpenings" value="1"`) {
		t.Fatal("expected openings default of 1")
	}
}
