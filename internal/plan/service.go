package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/config"
	"github.com/charlie-ai-lab/personality-learn/internal/intention"
)

var (
	ErrNotFound        = errors.New("plan not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

const (
	defaultPreference = "理论+实践"
	defaultDuration   = 30
)

// QuestionsRemainingError rejects plan generation while clarification
// questions are still unanswered.
type QuestionsRemainingError struct {
	Remaining int64
}

func (e *QuestionsRemainingError) Error() string {
	return fmt.Sprintf("%d clarification questions remaining", e.Remaining)
}

type Service interface {
	Generate(ctx context.Context, intentionID uuid.UUID) (*GeneratePlanResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*LearningPlan, error)
	List(ctx context.Context) ([]PlanListItem, error)
	ChapterContent(ctx context.Context, chapterID uuid.UUID) (*ChapterContentResponse, error)
	GetChapterContext(ctx context.Context, chapterID uuid.UUID) (*ChapterContext, error)
}

type service struct {
	repo       Repository
	intentions intention.Service
	provider   ai.Provider
}

func NewService(repo Repository, intentions intention.Service, provider ai.Provider) Service {
	return &service{repo: repo, intentions: intentions, provider: provider}
}

func (s *service) Generate(ctx context.Context, intentionID uuid.UUID) (*GeneratePlanResponse, error) {
	log := config.WithContext(ctx)

	intent, err := s.intentions.Get(ctx, intentionID)
	if err != nil {
		return nil, err
	}

	remaining, err := s.intentions.CountUnanswered(ctx, intentionID)
	if err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, &QuestionsRemainingError{Remaining: remaining}
	}

	answers, err := s.intentions.AnsweredPairs(ctx, intentionID)
	if err != nil {
		return nil, err
	}

	preference := intent.LearningPreference
	if preference == "" {
		preference = defaultPreference
	}
	duration := intent.LessonDuration
	if duration <= 0 {
		duration = defaultDuration
	}

	prompt := ai.BuildPlanPrompt(intent.Topic, intent.Goal, intent.CurrentLevel, preference, duration, answers)
	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("Plan completion failed, using fallback plan")
		raw = ""
	}
	parsed, source := ai.ExtractPlan(raw, intent.Topic, preference, duration)

	newPlan := LearningPlan{
		ID:          uuid.New(),
		IntentionID: intent.ID,
		CourseTitle: parsed.CourseTitle,
	}
	chapters := make([]*Chapter, 0, len(parsed.Chapters))
	for i, c := range parsed.Chapters {
		chapters = append(chapters, &Chapter{
			ID:                uuid.New(),
			Title:             c.Title,
			Description:       c.Description,
			LearningGoal:      c.LearningGoal,
			LearningMethod:    c.LearningMethod,
			EstimatedDuration: c.EstimatedDuration,
			OrderIndex:        i + 1,
		})
	}

	if err := s.repo.CreateWithChapters(&newPlan, chapters); err != nil {
		return nil, err
	}

	log.WithField("plan_id", newPlan.ID).
		Infof("Generated plan %q with %d chapters (%s)", newPlan.CourseTitle, len(chapters), source)

	return &GeneratePlanResponse{
		ID:            newPlan.ID,
		CourseTitle:   newPlan.CourseTitle,
		ChaptersCount: len(chapters),
		Source:        source,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*LearningPlan, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]PlanListItem, error) {
	return s.repo.FindAll()
}

func (s *service) GetChapterContext(ctx context.Context, chapterID uuid.UUID) (*ChapterContext, error) {
	chapter, err := s.repo.FindChapterByID(chapterID)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}

	p, err := s.repo.FindByID(chapter.PlanID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	intent, err := s.intentions.Get(ctx, p.IntentionID)
	if err != nil {
		return nil, err
	}

	return &ChapterContext{
		Chapter:   chapter,
		PlanTitle: p.CourseTitle,
		Topic:     intent.Topic,
	}, nil
}

func (s *service) ChapterContent(ctx context.Context, chapterID uuid.UUID) (*ChapterContentResponse, error) {
	log := config.WithContext(ctx)

	cc, err := s.GetChapterContext(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildContentPrompt(cc.Topic, cc.Chapter.Title, cc.Chapter.LearningGoal, cc.Chapter.LearningMethod)
	content, err := s.provider.Complete(ctx, prompt)
	source := ai.SourceModel
	if err != nil || content == "" || ai.IsMockNotice(content) {
		if err != nil {
			log.WithError(err).Warn("Content completion failed, using fallback content")
		}
		content = ai.FallbackContent(cc.Chapter.Title, cc.Chapter.LearningGoal)
		source = ai.SourceFallback
	}

	return &ChapterContentResponse{
		Chapter:   cc.Chapter,
		Content:   content,
		PlanTitle: cc.PlanTitle,
		Source:    source,
	}, nil
}
