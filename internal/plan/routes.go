package plan

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	return r
}
