package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/config"
	"github.com/charlie-ai-lab/personality-learn/internal/intention"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GeneratePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.IntentionID == uuid.Nil {
		config.Fail(w, http.StatusBadRequest, "intention_id required")
		return
	}

	response, err := h.service.Generate(r.Context(), dto.IntentionID)
	if err != nil {
		var remaining *QuestionsRemainingError
		switch {
		case errors.Is(err, intention.ErrNotFound):
			config.Fail(w, http.StatusNotFound, "intention not found")
		case errors.As(err, &remaining):
			config.Fail(w, http.StatusBadRequest,
				fmt.Sprintf("请先回答所有澄清问题 (remaining: %d)", remaining.Remaining))
		default:
			log.WithError(err).Error("Failed to generate plan")
			config.Fail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Fail(w, http.StatusNotFound, "plan not found")
			return
		}
		log.WithError(err).Error("Failed to get plan")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	plans, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list plans")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, plans)
}

func (h *Handler) ChapterContent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	response, err := h.service.ChapterContent(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			config.Fail(w, http.StatusNotFound, "chapter not found")
			return
		}
		log.WithError(err).Error("Failed to generate chapter content")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, response)
}
