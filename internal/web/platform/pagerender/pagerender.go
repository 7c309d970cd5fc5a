// Package pagerender writes layout-wrapped HTML pages to responses.
package pagerender

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/arthajobs/web/internal/web/templates"
)

// WritePage renders content inside the shared layout with the given status.
func WritePage(w http.ResponseWriter, r *http.Request, status int, title string, viewer templates.Viewer, content templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	page := templates.Layout(title, viewer, content)
	if err := page.Render(r.Context(), w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}
