package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/charlie-ai-lab/personality-learn/internal/assessment"
	"github.com/charlie-ai-lab/personality-learn/internal/config"
	"github.com/charlie-ai-lab/personality-learn/internal/intention"
	"github.com/charlie-ai-lab/personality-learn/internal/middlewares"
	"github.com/charlie-ai-lab/personality-learn/internal/plan"
	"github.com/charlie-ai-lab/personality-learn/internal/progress"
)

type RouterConfig struct {
	IntentionHandler  *intention.Handler
	PlanHandler       *plan.Handler
	ProgressHandler   *progress.Handler
	AssessmentHandler *assessment.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"service":   "personality-learn-backend",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/intentions", intention.Routes(cfg.IntentionHandler))
		r.Mount("/plans", plan.Routes(cfg.PlanHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/assessment", assessment.Routes(cfg.AssessmentHandler))

		r.Get("/chapters/{id}/content", cfg.PlanHandler.ChapterContent)
	})

	return r
}
