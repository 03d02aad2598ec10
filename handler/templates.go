package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/ui"
)

// templateData holds the values available to every page template.
type templateData struct {
	User            *data.User
	CanMarkReturned bool
	CurrentPath     string
	Counts          *data.CatalogCounts
	NumVisits       int
	Books           []*data.Book
	Book            *data.Book
	Instances       []*data.BookInstance
	Metadata        data.Metadata
	Form            dto.LoginForm
	Error           string
	Status          int
	Message         interface{}
}

func formatDate(d *data.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// overdue reports whether a due date lies before today.
func overdue(d *data.Date) bool {
	if d == nil {
		return false
	}
	now := time.Now()
	return d.Before(data.NewDate(now.Year(), now.Month(), now.Day()))
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

var functions = template.FuncMap{
	"date":       formatDate,
	"overdue":    overdue,
	"pluralize":  pluralize,
	"statusText": http.StatusText,
}

// newTemplateCache parses every page together with the base layout and partials.
func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}
	pages, err := fs.Glob(ui.Files, "html/pages/*.html")
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		name := path.Base(page)
		ts, err := template.New(name).Funcs(functions).ParseFS(ui.Files, "html/base.html", "html/partials/*.html", page)
		if err != nil {
			return nil, err
		}
		cache[name] = ts
	}
	return cache, nil
}

// newTemplateData fills in the user-dependent values shared by all pages.
func (h *Handler) newTemplateData(r *http.Request) *templateData {
	user, ok := r.Context().Value(userContextKey).(*data.User)
	if !ok {
		user = data.AnonymousUser
	}
	td := &templateData{User: user, CurrentPath: r.URL.Path}
	if !user.IsAnonymous() {
		permissions, err := h.userPermissions(r.Context(), user.ID)
		if err == nil {
			td.CanMarkReturned = permissions.Include(data.PermissionMarkReturned)
		}
	}
	return td
}

// render executes a page into a buffer first so that template errors turn
// into a clean 500 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, td *templateData) {
	ts, ok := h.templates[page]
	if !ok {
		h.serverErrorResponse(w, r, fmt.Errorf("the template %s does not exist", page))
		return
	}
	buf := new(bytes.Buffer)
	err := ts.ExecuteTemplate(buf, "base", td)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError writes the error page and falls back to plain text when the
// page itself cannot be rendered.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	td := h.newTemplateData(r)
	td.Status = status
	td.Message = message
	buf := new(bytes.Buffer)
	err := h.templates["error.html"].ExecuteTemplate(buf, "base", td)
	if err != nil {
		h.logError(r, err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
