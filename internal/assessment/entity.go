package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/plan"
)

type AssessmentQuestion struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter        plan.Chapter `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	Question       string       `gorm:"type:text;not null" json:"question"`
	QuestionType   string       `gorm:"type:text" json:"question_type"`
	ExpectedAnswer string       `gorm:"type:text" json:"expected_answer"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`

	Answers []UserAnswer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

type UserAnswer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
