package intention

import (
	"gorm.io/gorm"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, provider ai.Provider) *Container {
	repo := NewRepository(db)
	service := NewService(repo, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
