package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start/{chapterID}", h.Start)
	r.Post("/complete/{chapterID}", h.Complete)
	r.Get("/{chapterID}", h.Get)

	return r
}
