package assessment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/config"
	"github.com/charlie-ai-lab/personality-learn/internal/plan"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapterID, err := uuid.Parse(chi.URLParam(r, "chapterID"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid chapter id")
		return
	}

	response, err := h.service.Generate(r.Context(), chapterID)
	if err != nil {
		if errors.Is(err, plan.ErrChapterNotFound) {
			config.Fail(w, http.StatusNotFound, "chapter not found")
			return
		}
		log.WithError(err).Error("Failed to generate assessment questions")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.QuestionID == uuid.Nil {
		config.Fail(w, http.StatusBadRequest, "question_id required")
		return
	}

	response, err := h.service.Submit(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Fail(w, http.StatusNotFound, "question not found")
			return
		}
		log.WithError(err).Error("Failed to evaluate answer")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, response)
}
