package intention

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningIntention struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Topic              string    `gorm:"type:text;not null" json:"topic"`
	Goal               string    `gorm:"type:text" json:"goal"`
	CurrentLevel       string    `gorm:"type:text" json:"current_level"`
	LearningPreference string    `gorm:"type:text" json:"learning_preference"`
	LessonDuration     int       `gorm:"default:0" json:"lesson_duration"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []ClarificationQuestion `gorm:"foreignKey:IntentionID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type ClarificationQuestion struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	IntentionID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"intention_id"`
	Question     string         `gorm:"type:text;not null" json:"question"`
	QuestionType string         `gorm:"type:text" json:"question_type"`
	Options      datatypes.JSON `gorm:"type:jsonb" json:"options"`
	OrderIndex   int            `gorm:"not null" json:"order_index"`
	Answered     bool           `gorm:"not null;default:false" json:"answered"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Answers []ClarificationAnswer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

type ClarificationAnswer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	IntentionID uuid.UUID `gorm:"type:uuid;not null;index" json:"intention_id"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
