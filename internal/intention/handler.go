package intention

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateIntentionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.Topic == "" {
		config.Fail(w, http.StatusBadRequest, "topic required")
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create intention")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	intentions, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list intentions")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, intentions)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	response, err := h.service.Questions(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Fail(w, http.StatusNotFound, "intention not found")
			return
		}
		log.WithError(err).Error("Failed to list clarification questions")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var dto SubmitAnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.QuestionID == uuid.Nil {
		config.Fail(w, http.StatusBadRequest, "question_id required")
		return
	}

	response, err := h.service.SubmitAnswer(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Fail(w, http.StatusNotFound, "question not found")
			return
		}
		log.WithError(err).Error("Failed to record answer")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, response)
}
