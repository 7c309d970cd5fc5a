// Package jobs serves the public job browsing and application routes.
package jobs

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/arthajobs/web/internal/apply"
	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"
)

// Board reads postings from and submits applications to the remote job board.
type Board interface {
	GetJob(ctx context.Context, jobID string) (jobboard.Job, error)
	ListJobs(ctx context.Context, filters jobboard.JobFilters) ([]jobboard.Job, error)
	CreateApplication(ctx context.Context, jobID, coverLetter string) error
}

// Module serves job browsing and the per-posting application workflow.
// At most one draft workflow exists per posting at a time.
type Module struct {
	board Board

	mu     sync.Mutex
	drafts map[string]*apply.Workflow
}

// New returns the jobs module.
func New(board Board) *Module {
	return &Module{board: board, drafts: make(map[string]*apply.Workflow)}
}

// ID identifies the module.
func (m *Module) ID() string { return "jobs" }

// Mount wires the browsing and application routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Jobs, func(w http.ResponseWriter, r *http.Request) {
		m.list(w, r, deps)
	})
	mux.HandleFunc("GET /jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.details(w, r, deps)
	})
	mux.HandleFunc("POST /jobs/{id}/apply", func(w http.ResponseWriter, r *http.Request) {
		m.submit(w, r, deps)
	})
	mux.HandleFunc("POST /jobs/{id}/apply/cancel", func(w http.ResponseWriter, r *http.Request) {
		m.cancel(w, r, deps)
	})
	mux.HandleFunc("POST /jobs/{id}/apply/retry", func(w http.ResponseWriter, r *http.Request) {
		m.retry(w, r, deps)
	})
	return module.Mount{Prefixes: []string{routepath.Jobs, routepath.JobsPrefix}, Handler: mux}, nil
}

// ResetDrafts tears down every draft workflow. Called when the session ends
// so a later sign-in starts from a clean slate.
func (m *Module) ResetDrafts() {
	m.mu.Lock()
	drafts := m.drafts
	m.drafts = make(map[string]*apply.Workflow)
	m.mu.Unlock()
	for _, w := range drafts {
		w.Close()
	}
}

func (m *Module) list(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	query := r.URL.Query()
	filters := jobboard.JobFilters{
		Search:          query.Get("search"),
		Location:        query.Get("location"),
		JobType:         query.Get("jobType"),
		ExperienceLevel: query.Get("experienceLevel"),
		WorkMode:        query.Get("workMode"),
	}
	view := templates.JobsView{Filters: filters}
	jobs, err := m.board.ListJobs(r.Context(), filters)
	if err != nil {
		view.Error = presentError(err)
	}
	view.Jobs = jobs
	viewer := templates.ViewerFor(deps.Sessions.Current())
	pagerender.WritePage(w, r, http.StatusOK, "Browse Jobs", viewer, templates.JobsPage(view))
}

func (m *Module) details(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	jobID := r.PathValue("id")
	session, present := deps.Sessions.Current()
	viewer := templates.ViewerFor(session, present)
	job, err := m.board.GetJob(r.Context(), jobID)
	if err != nil {
		content := templates.JobsPage(templates.JobsView{Error: presentError(err)})
		pagerender.WritePage(w, r, http.StatusBadGateway, "Job", viewer, content)
		return
	}
	view := templates.JobDetailsView{
		Job:   job,
		Apply: m.applyView(jobID, session, present),
	}
	pagerender.WritePage(w, r, http.StatusOK, job.Title, viewer, templates.JobDetailsPage(view))
}

// applyView projects the draft workflow, if any, onto the apply section.
func (m *Module) applyView(jobID string, session domain.Session, present bool) templates.ApplyView {
	if !present {
		return templates.ApplyView{ShowLoginPrompt: true}
	}
	if session.Identity.Role != domain.RoleJobSeeker {
		return templates.ApplyView{}
	}
	draft := m.draft(jobID)
	if draft == nil {
		return templates.ApplyView{ShowApplyNow: true}
	}
	switch draft.State() {
	case apply.StateEditing:
		return templates.ApplyView{ShowForm: true, CoverLetter: draft.CoverLetter()}
	case apply.StateSubmitting:
		return templates.ApplyView{ShowForm: true, Submitting: true, CoverLetter: draft.CoverLetter()}
	case apply.StateSucceeded:
		return templates.ApplyView{Succeeded: true}
	case apply.StateFailed:
		return templates.ApplyView{ShowRetry: true, Error: presentError(draft.Err())}
	default:
		return templates.ApplyView{ShowApplyNow: true}
	}
}

func (m *Module) submit(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	jobID := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
		return
	}
	if r.PostFormValue("open") != "" {
		m.open(w, r, deps, jobID)
		return
	}
	draft := m.draft(jobID)
	if draft == nil {
		http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
		return
	}
	if err := draft.EditCoverLetter(r.PostFormValue("coverLetter")); err != nil {
		http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
		return
	}
	err := draft.Submit(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, apply.ErrEmptyCoverLetter):
		// Editing state preserved; details page shows the form again.
		session, present := deps.Sessions.Current()
		view := templates.JobDetailsView{Apply: m.applyView(jobID, session, present)}
		view.Apply.Error = "cover letter cannot be empty"
		if job, jobErr := m.board.GetJob(r.Context(), jobID); jobErr == nil {
			view.Job = job
		}
		viewer := templates.ViewerFor(session, present)
		pagerender.WritePage(w, r, http.StatusBadRequest, "Apply", viewer, templates.JobDetailsPage(view))
		return
	case errors.Is(err, apply.ErrSignedOut):
		m.dropDraft(jobID)
		http.Redirect(w, r, routepath.Login+"?notice=apply", http.StatusSeeOther)
		return
	case errors.Is(err, apply.ErrSessionExpired):
		m.dropDraft(jobID)
		http.Redirect(w, r, routepath.Login+"?expired=1", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
}

func (m *Module) open(w http.ResponseWriter, r *http.Request, deps module.Dependencies, jobID string) {
	session, present := deps.Sessions.Current()
	if !present {
		http.Redirect(w, r, routepath.Login+"?notice=apply", http.StatusSeeOther)
		return
	}
	if session.Identity.Role != domain.RoleJobSeeker {
		view := templates.JobDetailsView{Apply: templates.ApplyView{Error: apply.ErrNotEligible.Error()}}
		if job, err := m.board.GetJob(r.Context(), jobID); err == nil {
			view.Job = job
		}
		viewer := templates.ViewerFor(session, present)
		pagerender.WritePage(w, r, http.StatusForbidden, "Apply", viewer, templates.JobDetailsPage(view))
		return
	}
	m.mu.Lock()
	draft, ok := m.drafts[jobID]
	if !ok {
		draft = apply.New(jobID, deps.Sessions, m.board)
		m.drafts[jobID] = draft
	}
	m.mu.Unlock()
	if err := draft.Open(); err != nil && errors.Is(err, apply.ErrSignedOut) {
		m.dropDraft(jobID)
		http.Redirect(w, r, routepath.Login+"?notice=apply", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
}

func (m *Module) cancel(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	jobID := r.PathValue("id")
	if draft := m.draft(jobID); draft != nil {
		if err := draft.Cancel(); err == nil {
			m.dropDraft(jobID)
		}
	}
	http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
}

func (m *Module) retry(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	jobID := r.PathValue("id")
	if draft := m.draft(jobID); draft != nil {
		_ = draft.Retry()
	}
	http.Redirect(w, r, routepath.Job(jobID), http.StatusSeeOther)
}

func (m *Module) draft(jobID string) *apply.Workflow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drafts[jobID]
}

func (m *Module) dropDraft(jobID string) {
	m.mu.Lock()
	draft := m.drafts[jobID]
	delete(m.drafts, jobID)
	m.mu.Unlock()
	if draft != nil {
		draft.Close()
	}
}

// presentError keeps rejection messages verbatim and folds transport
// failures into a stable operator-facing line.
func presentError(err error) string {
	if err == nil {
		return ""
	}
	var rejected *jobboard.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	if errors.Is(err, jobboard.ErrUnavailable) {
		return "the job board is temporarily unavailable"
	}
	return err.Error()
}
