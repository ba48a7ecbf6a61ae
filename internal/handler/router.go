package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen/internal/middleware"
)

// NewRouter wires the API routes. limit is applied to every /api/v1 route and
// may be nil.
func NewRouter(gen *GeneratorHandler, wid *WidgetHandler, limit func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}

		r.Post("/generate", gen.HandleGenerate)
		r.Post("/strength", gen.HandleStrength)

		r.Route("/widget", func(r chi.Router) {
			r.Get("/", wid.HandleGetState)
			r.Patch("/", wid.HandleUpdate)
			r.Post("/regenerate", wid.HandleRegenerate)
			r.Post("/copy", wid.HandleCopy)
		})
	})

	return r
}
