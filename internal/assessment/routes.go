package assessment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{chapterID}", h.Generate)
	r.Post("/submit", h.Submit)

	return r
}
