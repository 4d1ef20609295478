package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the route table. There is no catch-all: unknown paths
// are 404 once the gate is ready.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(h.waitForGate)

	r.Get(PathRoot, h.root)
	r.Get(PathLogin, h.loginForm)
	r.With(h.csrf.Protect).Post(PathLogin, h.login)
	r.With(h.csrf.Protect).Post(PathLogout, h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get(PathDashboard, h.dashboard)
		r.Get(PathConfirmDelete, h.confirmDelete)
		r.With(h.csrf.Protect).Post(PathConfirmDelete, h.deleteUser)
		r.Get(PathEdit, h.editForm)
		r.With(h.csrf.Protect).Post(PathEdit, h.saveUser)
	})

	return r
}
