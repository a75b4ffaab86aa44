package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
)

type GeneratePlanDTO struct {
	IntentionID uuid.UUID `json:"intention_id"`
}

type GeneratePlanResponse struct {
	ID            uuid.UUID `json:"id"`
	CourseTitle   string    `json:"course_title"`
	ChaptersCount int       `json:"chapters_count"`
	Source        ai.Source `json:"source"`
}

type PlanListItem struct {
	ID          uuid.UUID `json:"id"`
	IntentionID uuid.UUID `json:"intention_id"`
	CourseTitle string    `json:"course_title"`
	Topic       string    `json:"topic"`
	Goal        string    `json:"goal"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChapterContentResponse struct {
	Chapter   *Chapter  `json:"chapter"`
	Content   string    `json:"content"`
	PlanTitle string    `json:"plan_title"`
	Source    ai.Source `json:"source"`
}

// ChapterContext bundles a chapter with its plan and intention context for
// prompt building.
type ChapterContext struct {
	Chapter   *Chapter
	PlanTitle string
	Topic     string
}
