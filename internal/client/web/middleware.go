package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/usergate/internal/client/services"
)

const requestIDHeader = "X-Request-ID"

// requestID tags the request with a UUID, echoed in X-Request-ID and
// readable with middleware.GetReqID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// waitForGate defers every routing decision until the gate has read the
// session store.
func (h *Handler) waitForGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.gate.Phase() == services.PhaseLoading {
			w.Header().Set("Retry-After", "1")
			h.render(w, r, http.StatusServiceUnavailable, "loading.html", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth sends unauthenticated requests to the login view.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.gate.IsAuthenticated() {
			http.Redirect(w, r, PathLogin, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
