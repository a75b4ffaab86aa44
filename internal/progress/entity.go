package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/plan"
)

type LearningProgress struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID          uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"chapter_id"`
	Chapter            plan.Chapter `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	Status             Status       `gorm:"type:text;not null;default:'not_started'" json:"status"`
	StartedAt          *time.Time   `json:"started_at,omitempty"`
	CompletedAt        *time.Time   `json:"completed_at,omitempty"`
	UserSelfAssessment string       `gorm:"type:text" json:"user_self_assessment,omitempty"`
	CreatedAt          time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}
