package intention

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}/questions", h.ListQuestions)
	r.Post("/{id}/answers", h.SubmitAnswer)

	return r
}
