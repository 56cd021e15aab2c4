package httpserver

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"codelens/internal/handle"
	"codelens/internal/middleware"
)

// NewRouter wires the analyze API and the embedded front-end. Everything outside
// /api and /healthz is served from static.
func NewRouter(h *handle.Handle, static fs.FS, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/analyze", h.Analyze)

	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}
