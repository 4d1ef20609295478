package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/client/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"dashboardPath": dashboardPath,
	"editPath":      editPath,
	"deletePath":    deletePath,
}).ParseFS(templatesFS, "templates/*.html"))

type loginPage struct {
	CSRF     string
	Email    string
	Password string
	Error    string
}

type dashboardPage struct {
	CSRF string
	List services.ListView
}

type confirmDeletePage struct {
	CSRF string
	User models.User
}

type editPage struct {
	CSRF    string
	ID      int
	Loaded  bool
	Avatar  string
	Form    models.UserUpdate
	Error   string
	Success string
	BackURL string

	RedirectMillis  int64
	RedirectSeconds int64
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.Error(r.Context(), "failed to render view", "view", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// csrfToken issues a token for a form; a failure is logged and yields a
// token that Protect will reject.
func (h *Handler) csrfToken(r *http.Request) string {
	tok, err := h.csrf.Issue()
	if err != nil {
		h.log.Error(r.Context(), "failed to issue csrf token", "error", err)
		return ""
	}
	return tok
}
