package progress

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

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapterID, err := uuid.Parse(chi.URLParam(r, "chapterID"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid chapter id")
		return
	}

	p, err := h.service.Start(r.Context(), chapterID)
	if err != nil {
		log.WithError(err).Error("Failed to start chapter")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapterID, err := uuid.Parse(chi.URLParam(r, "chapterID"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid chapter id")
		return
	}

	var dto struct {
		SelfAssessment string `json:"self_assessment"`
	}
	if r.Body != nil {
		// Body is optional; a bare complete call is accepted.
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	p, err := h.service.Complete(r.Context(), chapterID, dto.SelfAssessment)
	if err != nil {
		log.WithError(err).Error("Failed to complete chapter")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapterID, err := uuid.Parse(chi.URLParam(r, "chapterID"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid chapter id")
		return
	}

	p, err := h.service.Get(r.Context(), chapterID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Fail(w, http.StatusNotFound, "progress not found")
			return
		}
		log.WithError(err).Error("Failed to get progress")
		config.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, p)
}
