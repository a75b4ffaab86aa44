package intention

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/config"
)

var (
	ErrNotFound         = errors.New("intention not found")
	ErrQuestionNotFound = errors.New("clarification question not found")
)

type Service interface {
	Create(ctx context.Context, dto CreateIntentionDTO) (*CreateIntentionResponse, error)
	List(ctx context.Context) ([]LearningIntention, error)
	Questions(ctx context.Context, intentionID uuid.UUID) (*QuestionListResponse, error)
	SubmitAnswer(ctx context.Context, intentionID uuid.UUID, dto SubmitAnswerDTO) (*SubmitAnswerResponse, error)

	Get(ctx context.Context, intentionID uuid.UUID) (*LearningIntention, error)
	CountUnanswered(ctx context.Context, intentionID uuid.UUID) (int64, error)
	AnsweredPairs(ctx context.Context, intentionID uuid.UUID) ([]ai.QA, error)
}

type service struct {
	repo     Repository
	provider ai.Provider
}

func NewService(repo Repository, provider ai.Provider) Service {
	return &service{repo: repo, provider: provider}
}

func (s *service) Create(ctx context.Context, dto CreateIntentionDTO) (*CreateIntentionResponse, error) {
	log := config.WithContext(ctx)

	intention := LearningIntention{
		ID:                 uuid.New(),
		Topic:              dto.Topic,
		Goal:               dto.Goal,
		CurrentLevel:       dto.CurrentLevel,
		LearningPreference: dto.LearningPreference,
		LessonDuration:     dto.LessonDuration,
	}
	if err := s.repo.Create(&intention); err != nil {
		return nil, err
	}

	raw, err := s.provider.Complete(ctx, ai.BuildClarificationPrompt(dto.Topic, dto.Goal, dto.CurrentLevel))
	if err != nil {
		log.WithError(err).Warn("Clarification completion failed, using fallback questions")
		raw = ""
	}
	items, source := ai.ExtractClarifications(raw, dto.Topic)

	questions := make([]*ClarificationQuestion, 0, len(items))
	for i, item := range items {
		var options datatypes.JSON
		if item.Options != nil {
			encoded, err := json.Marshal(item.Options)
			if err != nil {
				return nil, err
			}
			options = datatypes.JSON(encoded)
		}
		questions = append(questions, &ClarificationQuestion{
			ID:           uuid.New(),
			IntentionID:  intention.ID,
			Question:     item.Question,
			QuestionType: item.Type,
			Options:      options,
			OrderIndex:   i + 1,
		})
	}
	if err := s.repo.CreateQuestions(questions); err != nil {
		return nil, err
	}

	log.WithField("intention_id", intention.ID).
		Infof("Created intention with %d clarification questions (%s)", len(questions), source)

	return &CreateIntentionResponse{
		ID:              intention.ID,
		Topic:           intention.Topic,
		Goal:            intention.Goal,
		CurrentLevel:    intention.CurrentLevel,
		Step:            "clarification",
		QuestionsCount:  len(questions),
		QuestionsSource: source,
	}, nil
}

func (s *service) List(ctx context.Context) ([]LearningIntention, error) {
	return s.repo.FindAll()
}

func (s *service) Questions(ctx context.Context, intentionID uuid.UUID) (*QuestionListResponse, error) {
	intention, err := s.repo.FindByID(intentionID)
	if err != nil {
		return nil, err
	}
	if intention == nil {
		return nil, ErrNotFound
	}

	questions, err := s.repo.FindUnansweredQuestions(intentionID)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountQuestions(intentionID)
	if err != nil {
		return nil, err
	}
	remaining, err := s.repo.CountUnanswered(intentionID)
	if err != nil {
		return nil, err
	}

	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var options []string
		if len(q.Options) > 0 {
			if err := json.Unmarshal(q.Options, &options); err != nil {
				options = nil
			}
		}
		responses = append(responses, QuestionResponse{
			ID:           q.ID,
			Question:     q.Question,
			QuestionType: q.QuestionType,
			Options:      options,
			OrderIndex:   q.OrderIndex,
			Answered:     q.Answered,
		})
	}

	return &QuestionListResponse{
		Intention: IntentionSummary{ID: intention.ID, Topic: intention.Topic, Goal: intention.Goal},
		Questions: responses,
		Total:     total,
		Answered:  total - remaining,
	}, nil
}

func (s *service) SubmitAnswer(ctx context.Context, intentionID uuid.UUID, dto SubmitAnswerDTO) (*SubmitAnswerResponse, error) {
	question, err := s.repo.FindQuestionByID(dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answer := ClarificationAnswer{
		ID:          uuid.New(),
		QuestionID:  question.ID,
		IntentionID: intentionID,
		Answer:      dto.Answer,
	}
	if err := s.repo.CreateAnswer(&answer); err != nil {
		return nil, err
	}
	if err := s.repo.MarkAnswered(question.ID); err != nil {
		return nil, err
	}

	remaining, err := s.repo.CountUnanswered(intentionID)
	if err != nil {
		return nil, err
	}

	return &SubmitAnswerResponse{
		AnswerID:   answer.ID,
		IsComplete: remaining == 0,
		Remaining:  remaining,
	}, nil
}

func (s *service) Get(ctx context.Context, intentionID uuid.UUID) (*LearningIntention, error) {
	intention, err := s.repo.FindByID(intentionID)
	if err != nil {
		return nil, err
	}
	if intention == nil {
		return nil, ErrNotFound
	}
	return intention, nil
}

func (s *service) CountUnanswered(ctx context.Context, intentionID uuid.UUID) (int64, error) {
	return s.repo.CountUnanswered(intentionID)
}

func (s *service) AnsweredPairs(ctx context.Context, intentionID uuid.UUID) ([]ai.QA, error) {
	pairs, err := s.repo.FindAnsweredPairs(intentionID)
	if err != nil {
		return nil, err
	}
	qas := make([]ai.QA, 0, len(pairs))
	for _, p := range pairs {
		qas = append(qas, ai.QA{Question: p.Question, Answer: p.Answer})
	}
	return qas, nil
}
