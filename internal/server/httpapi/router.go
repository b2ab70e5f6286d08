// Package httpapi is the REST surface of the eldercare server: routing,
// request decoding, bearer extraction and the mapping of service errors to
// HTTP statuses.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/eldercare/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the /api routes. When staticDir is not empty its files are
// served at "/".
func NewRouter(h *Handler, log logging.Logger, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			JSONError(w, http.StatusNotFound, msgNotFound)
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			JSONError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		})

		r.Get("/healthcheck", h.Healthcheck)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(BearerAuth).Get("/me", h.Me)
	})

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
