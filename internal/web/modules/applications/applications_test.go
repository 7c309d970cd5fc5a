package applications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
)

type fakeBoard struct {
	mine          []jobboard.Application
	received      []jobboard.Application
	err           error
	mineCalls     int
	receivedCalls int
}

func (f *fakeBoard) MyApplications(ctx context.Context) ([]jobboard.Application, error) {
	f.mineCalls++
	return f.mine, f.err
}

func (f *fakeBoard) EmployerApplications(ctx context.Context) ([]jobboard.Application, error) {
	f.receivedCalls++
	return f.received, f.err
}

type fakeSessions struct {
	session domain.Session
	present bool
}

func (f *fakeSessions) Current() (domain.Session, bool) {
	return f.session, f.present
}

func sessionsFor(role domain.Role) *fakeSessions {
	return &fakeSessions{
		session: domain.Session{Identity: domain.Identity{ID: "u1", Role: role}, Token: "tok"},
		present: true,
	}
}

func serve(t *testing.T, board *fakeBoard, sessions *fakeSessions) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New(board).Mount(module.Dependencies{Sessions: sessions})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rec := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/applications", nil))
	return rec
}

func TestJobSeekerSeesOwnApplications(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{mine: []jobboard.Application{{
		ID:          "a1",
		Job:         &jobboard.ApplicationJob{Title: "Backend Engineer", Company: "Acme"},
		CoverLetter: "Hire me.",
		Status:      "pending",
	}}}
	rec := serve(t, board, sessionsFor(domain.RoleJobSeeker))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if board.mineCalls != 1 || board.receivedCalls != 0 {
		t.Fatalf("calls = (%d mine, %d received), want (1, 0)", board.mineCalls, board.receivedCalls)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "My Applications") {
		t.Fatal("expected job-seeker title")
	}
	if !strings.Contains(body, "pending") {
		t.Fatal("expected application status in body")
	}
}

func TestEmployerSeesReceivedApplications(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{received: []jobboard.Application{{
		ID:     "a2",
		Job:    &jobboard.ApplicationJob{Title: "Backend Engineer", Company: "Acme"},
		Status: "reviewing",
		Notes:  "Strong candidate",
	}}}
	rec := serve(t, board, sessionsFor(domain.RoleEmployer))

	if board.mineCalls != 0 || board.receivedCalls != 1 {
		t.Fatalf("calls = (%d mine, %d received), want (0, 1)", board.mineCalls, board.receivedCalls)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Received Applications") {
		t.Fatal("expected employer title")
	}
	if !strings.Contains(body, "Strong candidate") {
		t.Fatal("expected reviewer notes in body")
	}
}

func TestExpiredSessionRedirectsToLogin(t *testing.T) {
	t.Parallel()

	board := &fakeBoard{err: jobboard.ErrSessionExpired}
	rec := serve(t, board, sessionsFor(domain.RoleJobSeeker))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/login?expired=1" {
		t.Fatalf("Location = %q, want %q", got, "/login?expired=1")
	}
}

func TestEmptyListShowsPlaceholder(t *testing.T) {
	t.Parallel()

	rec := serve(t, &fakeBoard{}, sessionsFor(domain.RoleJobSeeker))
	if !strings.Contains(rec.Body.String(), "No applications found") {
		t.Fatal("expected empty-state placeholder")
	}
}
