package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
)

type fakeSessions struct {
	session domain.Session
	present bool
}

func (f *fakeSessions) Current() (domain.Session, bool) {
	return f.session, f.present
}

func serve(t *testing.T, role domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	sessions := &fakeSessions{
		session: domain.Session{
			Identity: domain.Identity{ID: "u1", Name: "Asha", Role: role},
			Token:    "tok",
		},
		present: true,
	}
	mount, err := New().Mount(module.Dependencies{Sessions: sessions})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rec := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/dashboard", nil))
	return rec
}

func TestDashboardGreetsUser(t *testing.T) {
	t.Parallel()

	rec := serve(t, domain.RoleJobSeeker)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Welcome, Asha!") {
		t.Fatal("expected greeting with user name")
	}
}

func TestDashboardEmployerSeesPostJobCard(t *testing.T) {
	t.Parallel()

	rec := serve(t, domain.RoleEmployer)
	if !strings.Contains(rec.Body.String(), "create a new job posting") {
		t.Fatal("expected post-job card for employer")
	}
}

func TestDashboardJobSeekerHasNoPostJobCard(t *testing.T) {
	t.Parallel()

	rec := serve(t, domain.RoleJobSeeker)
	if strings.Contains(rec.Body.String(), "create a new job posting") {
		t.Fatal("expected no post-job card for job seeker")
	}
}
