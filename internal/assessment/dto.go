package assessment

import (
	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
)

type GenerateResponse struct {
	ChapterTitle string                `json:"chapter_title"`
	Questions    []*AssessmentQuestion `json:"questions"`
	Source       ai.Source             `json:"source"`
}

type SubmitDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	Answer     string    `json:"answer"`
}

type SubmitResponse struct {
	AnswerID uuid.UUID `json:"answer_id"`
	Correct  bool      `json:"correct"`
	Feedback string    `json:"feedback"`
	Score    int       `json:"score"`
	Source   ai.Source `json:"source"`
}
