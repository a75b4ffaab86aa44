package container

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/assessment"
	"github.com/charlie-ai-lab/personality-learn/internal/config"
	"github.com/charlie-ai-lab/personality-learn/internal/intention"
	"github.com/charlie-ai-lab/personality-learn/internal/plan"
	"github.com/charlie-ai-lab/personality-learn/internal/progress"
)

type Container struct {
	DB *gorm.DB

	IntentionContainer  *intention.Container
	PlanContainer       *plan.Container
	ProgressContainer   *progress.Container
	AssessmentContainer *assessment.Container
}

func New(ctx context.Context) (*Container, error) {
	config.Init()

	db, err := config.Connect(ctx, os.Getenv("DATABASE_DSN"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := db.AutoMigrate(
		&intention.LearningIntention{},
		&intention.ClarificationQuestion{},
		&intention.ClarificationAnswer{},
		&plan.LearningPlan{},
		&plan.Chapter{},
		&progress.LearningProgress{},
		&assessment.AssessmentQuestion{},
		&assessment.UserAnswer{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	provider := ai.NewMinimaxProvider()

	intentionContainer := intention.NewContainer(db, provider)
	planContainer := plan.NewContainer(db, intentionContainer.Service, provider)
	progressContainer := progress.NewContainer(db)
	assessmentContainer := assessment.NewContainer(db, planContainer.Service, provider)

	return &Container{
		DB:                  db,
		IntentionContainer:  intentionContainer,
		PlanContainer:       planContainer,
		ProgressContainer:   progressContainer,
		AssessmentContainer: assessmentContainer,
	}, nil
}

func (c *Container) Close() error {
	return config.Close(c.DB)
}
