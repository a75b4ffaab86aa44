package assessment

import (
	"gorm.io/gorm"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/plan"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, plans plan.Service, provider ai.Provider) *Container {
	repo := NewRepository(db)
	service := NewService(repo, plans, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
