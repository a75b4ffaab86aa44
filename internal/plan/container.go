package plan

import (
	"gorm.io/gorm"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/intention"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, intentions intention.Service, provider ai.Provider) *Container {
	repo := NewRepository(db)
	service := NewService(repo, intentions, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
