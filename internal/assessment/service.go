package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/config"
	"github.com/charlie-ai-lab/personality-learn/internal/plan"
)

var ErrQuestionNotFound = errors.New("assessment question not found")

type Service interface {
	Generate(ctx context.Context, chapterID uuid.UUID) (*GenerateResponse, error)
	Submit(ctx context.Context, dto SubmitDTO) (*SubmitResponse, error)
}

type service struct {
	repo     Repository
	plans    plan.Service
	provider ai.Provider
}

func NewService(repo Repository, plans plan.Service, provider ai.Provider) Service {
	return &service{repo: repo, plans: plans, provider: provider}
}

// Generate creates a fresh question batch for the chapter. Repeated calls
// append new batches; old questions are kept.
func (s *service) Generate(ctx context.Context, chapterID uuid.UUID) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	cc, err := s.plans.GetChapterContext(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Complete(ctx, ai.BuildAssessmentPrompt(cc.Topic, cc.Chapter.Title, cc.Chapter.LearningGoal))
	if err != nil {
		log.WithError(err).Warn("Assessment completion failed, using fallback questions")
		raw = ""
	}
	items, source := ai.ExtractAssessment(raw, cc.Chapter.Title, cc.Chapter.LearningGoal)

	questions := make([]*AssessmentQuestion, 0, len(items))
	for _, item := range items {
		questions = append(questions, &AssessmentQuestion{
			ID:             uuid.New(),
			ChapterID:      chapterID,
			Question:       item.Question,
			QuestionType:   item.Type,
			ExpectedAnswer: item.ExpectedAnswer,
		})
	}
	if err := s.repo.CreateQuestions(questions); err != nil {
		return nil, err
	}

	log.WithField("chapter_id", chapterID).
		Infof("Generated %d assessment questions (%s)", len(questions), source)

	return &GenerateResponse{
		ChapterTitle: cc.Chapter.Title,
		Questions:    questions,
		Source:       source,
	}, nil
}

func (s *service) Submit(ctx context.Context, dto SubmitDTO) (*SubmitResponse, error) {
	log := config.WithContext(ctx)

	question, err := s.repo.FindQuestionByID(dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	raw, err := s.provider.Complete(ctx, ai.BuildEvaluationPrompt(question.Question, dto.Answer, question.ExpectedAnswer))
	if err != nil {
		log.WithError(err).Warn("Evaluation completion failed, using fallback grading")
		raw = ""
	}
	evaluation, source := ai.ExtractEvaluation(raw, dto.Answer, question.ExpectedAnswer)

	answer := UserAnswer{
		ID:         uuid.New(),
		QuestionID: question.ID,
		Answer:     dto.Answer,
		IsCorrect:  evaluation.Correct,
	}
	if err := s.repo.CreateAnswer(&answer); err != nil {
		return nil, err
	}

	return &SubmitResponse{
		AnswerID: answer.ID,
		Correct:  evaluation.Correct,
		Feedback: evaluation.Feedback,
		Score:    evaluation.Score,
		Source:   source,
	}, nil
}
