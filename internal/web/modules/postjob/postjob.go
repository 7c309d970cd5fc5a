// Package postjob serves the employer posting form.
package postjob

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"

	weberrors "github.com/arthajobs/web/internal/web/platform/errors"
)

// Board creates postings on the remote job board.
type Board interface {
	CreateJob(ctx context.Context, input jobboard.JobInput) (jobboard.Job, error)
}

// Module serves the posting form. The access guard restricts it to employers.
type Module struct {
	board Board
}

// New returns the post-job module.
func New(board Board) *Module {
	return &Module{board: board}
}

// ID identifies the module.
func (m *Module) ID() string { return "postjob" }

// Mount wires the posting routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.PostJob, func(w http.ResponseWriter, r *http.Request) {
		m.render(w, r, deps, http.StatusOK, templates.PostJobView{NumberOfOpenings: 1})
	})
	mux.HandleFunc("POST "+routepath.PostJob, func(w http.ResponseWriter, r *http.Request) {
		m.create(w, r, deps)
	})
	return module.Mount{Prefixes: []string{routepath.PostJob}, Handler: mux}, nil
}

func (m *Module) create(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	if err := r.ParseForm(); err != nil {
		m.render(w, r, deps, http.StatusBadRequest, templates.PostJobView{Error: "invalid form submission"})
		return
	}
	openings, _ := strconv.Atoi(r.PostFormValue("numberOfOpenings"))
	if openings < 1 {
		openings = 1
	}
	input := jobboard.JobInput{
		Title:            strings.TrimSpace(r.PostFormValue("title")),
		Company:          strings.TrimSpace(r.PostFormValue("company")),
		Description:      strings.TrimSpace(r.PostFormValue("description")),
		Location:         strings.TrimSpace(r.PostFormValue("location")),
		JobType:          r.PostFormValue("jobType"),
		ExperienceLevel:  r.PostFormValue("experienceLevel"),
		WorkMode:         r.PostFormValue("workMode"),
		Requirements:     splitLines(r.PostFormValue("requirements")),
		Responsibilities: splitLines(r.PostFormValue("responsibilities")),
		Skills:           splitComma(r.PostFormValue("skills")),
		Benefits:         splitLines(r.PostFormValue("benefits")),
		NumberOfOpenings: openings,
	}
	view := templates.PostJobView{
		Title:            input.Title,
		Company:          input.Company,
		Description:      input.Description,
		Location:         input.Location,
		JobType:          input.JobType,
		ExperienceLevel:  input.ExperienceLevel,
		WorkMode:         input.WorkMode,
		Requirements:     r.PostFormValue("requirements"),
		Responsibilities: r.PostFormValue("responsibilities"),
		Skills:           r.PostFormValue("skills"),
		Benefits:         r.PostFormValue("benefits"),
		NumberOfOpenings: openings,
	}
	if input.Title == "" || input.Company == "" || input.Description == "" || input.Location == "" {
		view.Error = "title, company, description, and location are required"
		m.render(w, r, deps, http.StatusBadRequest, view)
		return
	}
	job, err := m.board.CreateJob(r.Context(), input)
	if err != nil {
		if errors.Is(err, jobboard.ErrSessionExpired) {
			http.Redirect(w, r, routepath.Login+"?expired=1", http.StatusSeeOther)
			return
		}
		view.Error = err.Error()
		m.render(w, r, deps, weberrors.HTTPStatus(err), view)
		return
	}
	http.Redirect(w, r, routepath.Job(job.ID), http.StatusSeeOther)
}

func (m *Module) render(w http.ResponseWriter, r *http.Request, deps module.Dependencies, status int, view templates.PostJobView) {
	viewer := templates.ViewerFor(deps.Sessions.Current())
	pagerender.WritePage(w, r, status, "Post a Job", viewer, templates.PostJobPage(view))
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitComma(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
