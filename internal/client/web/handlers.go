package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/usergate/internal/client/client"
	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/client/services"
	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

// Login form defaults: the demo API's known-good account.
const (
	DefaultEmail    = "eve.holt@reqres.in"
	DefaultPassword = "cityslicka"
)

// Editor is what the edit view needs from the directory.
type Editor interface {
	User(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, u models.UserUpdate) error
}

var _ Editor = (*services.Directory)(nil)

type Handler struct {
	gate          services.AuthGate
	list          *services.UserList
	editor        Editor
	csrf          *CSRF
	log           logging.Logger
	redirectDelay time.Duration
}

func NewHandler(gate services.AuthGate, list *services.UserList, editor Editor, csrf *CSRF, log logging.Logger, redirectDelay time.Duration) *Handler {
	return &Handler{
		gate:          gate,
		list:          list,
		editor:        editor,
		csrf:          csrf,
		log:           log,
		redirectDelay: redirectDelay,
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, PathLogin, http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", loginPage{
		CSRF:     h.csrfToken(r),
		Email:    DefaultEmail,
		Password: DefaultPassword,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if _, err := h.gate.Login(r.Context(), email, password); err != nil {
		msg := client.GenericLoginMessage
		var ae *client.AuthError
		if errors.As(err, &ae) && ae.Message != "" {
			msg = ae.Message
		}
		h.render(w, r, http.StatusUnauthorized, "login.html", loginPage{
			CSRF:     h.csrfToken(r),
			Email:    email,
			Password: password,
			Error:    msg,
		})
		return
	}

	h.list.Reset()
	http.Redirect(w, r, PathDashboard, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(r.Context())
	h.list.Reset()
	http.Redirect(w, r, PathLogin, http.StatusSeeOther)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("q") {
		h.list.SetTerm(q.Get("q"))
	}

	var view services.ListView
	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		view = h.list.Load(r.Context(), page)
	} else {
		view = h.list.EnsureLoaded(r.Context())
	}

	h.render(w, r, http.StatusOK, "dashboard.html", dashboardPage{CSRF: h.csrfToken(r), List: view})
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	u, found := h.list.Find(id)
	if !found {
		http.Redirect(w, r, PathDashboard, http.StatusFound)
		return
	}
	h.render(w, r, http.StatusOK, "confirm_delete.html", confirmDeletePage{CSRF: h.csrfToken(r), User: u})
}

// deleteUser never reports a failure to the user; the list changes only
// when the remote delete succeeds.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.list.Delete(r.Context(), id)
	http.Redirect(w, r, PathDashboard, http.StatusSeeOther)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := h.newEditPage(r, id)
	u, err := h.editor.User(r.Context(), id)
	if err != nil {
		page.Error = services.MsgLoadUserFailed
		status := http.StatusBadGateway
		if errors.Is(err, common.ErrNotFound) {
			status = http.StatusNotFound
		}
		h.render(w, r, status, "edit.html", page)
		return
	}

	page.Loaded = true
	page.Avatar = u.AvatarURL()
	page.Form = models.UpdateFrom(*u)
	h.render(w, r, http.StatusOK, "edit.html", page)
}

func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := h.newEditPage(r, id)
	page.Loaded = true
	page.Avatar = r.PostFormValue("avatar")
	page.Form = models.UserUpdate{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
	}

	if err := h.editor.Update(r.Context(), id, page.Form); err != nil {
		page.Error = services.Message(err)
		status := http.StatusBadGateway
		if errors.Is(err, common.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		h.render(w, r, status, "edit.html", page)
		return
	}

	page.Success = services.MsgUpdated
	h.render(w, r, http.StatusOK, "edit.html", page)
}

func (h *Handler) newEditPage(r *http.Request, id int) editPage {
	secs := int64((h.redirectDelay + time.Second - 1) / time.Second)
	return editPage{
		CSRF:            h.csrfToken(r),
		ID:              id,
		BackURL:         dashboardPath(h.list.Snapshot().Page),
		RedirectMillis:  h.redirectDelay.Milliseconds(),
		RedirectSeconds: secs,
	}
}

func userID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
