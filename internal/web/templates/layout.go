// Package templates builds the templ components the web modules render.
package templates

import (
	"context"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/arthajobs/web/internal/session/domain"
)

// Viewer is the signed-in principal as the navbar and pages see it.
type Viewer struct {
	Name     string
	Role     domain.Role
	SignedIn bool
}

// ViewerFor derives the navbar viewer from the current session state.
func ViewerFor(session domain.Session, present bool) Viewer {
	if !present {
		return Viewer{}
	}
	return Viewer{Name: session.Identity.Name, Role: session.Identity.Role, SignedIn: true}
}

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} — Artha Job Board</title>
</head>
<body>
<nav class="navbar">
  <a href="/" class="navbar-brand">Artha Job Board</a>
  <a href="/jobs">Browse Jobs</a>
  {{if .Viewer.SignedIn}}
    <a href="/app/dashboard">Dashboard</a>
    {{if .IsEmployer}}<a href="/app/post-job">Post Job</a>{{end}}
    <a href="/app/applications">Applications</a>
    <a href="/app/profile">Profile</a>
    <form method="post" action="/logout" class="logout-form"><button type="submit">Logout</button></form>
  {{else}}
    <a href="/login">Login</a>
    <a href="/register">Register</a>
  {{end}}
</nav>
<main>
{{.Body}}
</main>
</body>
</html>
`))

type layoutData struct {
	Title      string
	Viewer     Viewer
	IsEmployer bool
	Body       template.HTML
}

// Layout wraps a page fragment in the application shell.
func Layout(title string, viewer Viewer, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body strings.Builder
		if content != nil {
			if err := content.Render(ctx, &body); err != nil {
				return err
			}
		}
		return layoutTmpl.Execute(w, layoutData{
			Title:      title,
			Viewer:     viewer,
			IsEmployer: viewer.SignedIn && viewer.Role == domain.RoleEmployer,
			Body:       template.HTML(body.String()),
		})
	})
}

// fragment renders tmpl with data as a templ component.
func fragment(tmpl *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return tmpl.Execute(w, data)
	})
}
