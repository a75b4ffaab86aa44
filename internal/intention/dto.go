package intention

import (
	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
)

type CreateIntentionDTO struct {
	Topic              string `json:"topic"`
	Goal               string `json:"goal"`
	CurrentLevel       string `json:"current_level"`
	LearningPreference string `json:"learning_preference"`
	LessonDuration     int    `json:"lesson_duration"`
}

type CreateIntentionResponse struct {
	ID              uuid.UUID `json:"id"`
	Topic           string    `json:"topic"`
	Goal            string    `json:"goal"`
	CurrentLevel    string    `json:"current_level"`
	Step            string    `json:"step"`
	QuestionsCount  int       `json:"questions_count"`
	QuestionsSource ai.Source `json:"questions_source"`
}

type QuestionResponse struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	QuestionType string    `json:"question_type"`
	Options      []string  `json:"options"`
	OrderIndex   int       `json:"order_index"`
	Answered     bool      `json:"answered"`
}

type IntentionSummary struct {
	ID    uuid.UUID `json:"id"`
	Topic string    `json:"topic"`
	Goal  string    `json:"goal"`
}

type QuestionListResponse struct {
	Intention IntentionSummary   `json:"intention"`
	Questions []QuestionResponse `json:"questions"`
	Total     int64              `json:"total"`
	Answered  int64              `json:"answered"`
}

type SubmitAnswerDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	Answer     string    `json:"answer"`
}

type SubmitAnswerResponse struct {
	AnswerID   uuid.UUID `json:"answer_id"`
	IsComplete bool      `json:"is_complete"`
	Remaining  int64     `json:"remaining"`
}
