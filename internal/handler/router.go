package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/strongpass/strongpass-go/internal/middleware"
)

// NewRouter wires the generation API. limit guards the generate route; a nil
// limit disables rate limiting.
func NewRouter(gen *GeneratorHandler, limit func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		r.Post("/api/v1/generate", gen.HandleGenerate)
	})

	return r
}
