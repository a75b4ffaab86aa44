package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/intention"
)

type LearningPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IntentionID uuid.UUID `gorm:"type:uuid;not null;index" json:"intention_id"`
	CourseTitle string    `gorm:"type:text;not null" json:"course_title"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Intention intention.LearningIntention `gorm:"foreignKey:IntentionID;constraint:OnDelete:CASCADE" json:"-"`
	Chapters  []Chapter                   `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
}

type Chapter struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID            uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`
	Title             string    `gorm:"type:text;not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	LearningGoal      string    `gorm:"type:text" json:"learning_goal"`
	LearningMethod    string    `gorm:"type:text" json:"learning_method"`
	EstimatedDuration int       `gorm:"default:0" json:"estimated_duration"`
	OrderIndex        int       `gorm:"not null" json:"order_index"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}
