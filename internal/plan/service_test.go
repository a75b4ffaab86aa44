package plan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/ai"
	"github.com/charlie-ai-lab/personality-learn/internal/intention"
)

type stubRepo struct {
	plans    map[uuid.UUID]*LearningPlan
	chapters map[uuid.UUID][]*Chapter
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		plans:    make(map[uuid.UUID]*LearningPlan),
		chapters: make(map[uuid.UUID][]*Chapter),
	}
}

func (r *stubRepo) CreateWithChapters(plan *LearningPlan, chapters []*Chapter) error {
	for i := range chapters {
		chapters[i].PlanID = plan.ID
	}
	r.plans[plan.ID] = plan
	r.chapters[plan.ID] = chapters
	return nil
}

func (r *stubRepo) FindByID(id uuid.UUID) (*LearningPlan, error) {
	return r.plans[id], nil
}

func (r *stubRepo) FindAll() ([]PlanListItem, error) {
	return nil, nil
}

func (r *stubRepo) FindChapterByID(id uuid.UUID) (*Chapter, error) {
	for _, chapters := range r.chapters {
		for _, c := range chapters {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return nil, nil
}

type stubIntentions struct {
	intention *intention.LearningIntention
	remaining int64
	answers   []ai.QA
}

func (s *stubIntentions) Create(ctx context.Context, dto intention.CreateIntentionDTO) (*intention.CreateIntentionResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubIntentions) List(ctx context.Context) ([]intention.LearningIntention, error) {
	return nil, errors.New("not implemented")
}

func (s *stubIntentions) Questions(ctx context.Context, id uuid.UUID) (*intention.QuestionListResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubIntentions) SubmitAnswer(ctx context.Context, id uuid.UUID, dto intention.SubmitAnswerDTO) (*intention.SubmitAnswerResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubIntentions) Get(ctx context.Context, id uuid.UUID) (*intention.LearningIntention, error) {
	if s.intention == nil || s.intention.ID != id {
		return nil, intention.ErrNotFound
	}
	return s.intention, nil
}

func (s *stubIntentions) CountUnanswered(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.remaining, nil
}

func (s *stubIntentions) AnsweredPairs(ctx context.Context, id uuid.UUID) ([]ai.QA, error) {
	return s.answers, nil
}

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

func TestGenerateOrdersChapters(t *testing.T) {
	intent := &intention.LearningIntention{
		ID:                 uuid.New(),
		Topic:              "Go并发",
		LearningPreference: "理论+实践",
		LessonDuration:     30,
	}
	chapters := ""
	for i := 5; i >= 1; i-- {
		chapters += fmt.Sprintf(`{"title": "第%d章"},`, i)
	}
	chapters = chapters[:len(chapters)-1]
	reply := "```json\n" +
		fmt.Sprintf(`{"course_title": "完整课程", "chapters": [%s]}`, chapters) + "\n```"

	repo := newStubRepo()
	service := NewService(repo, &stubIntentions{intention: intent}, &stubProvider{reply: reply})

	resp, err := service.Generate(context.Background(), intent.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.ChaptersCount != 5 {
		t.Fatalf("expected 5 chapters, got %d", resp.ChaptersCount)
	}
	if resp.Source != ai.SourceModel {
		t.Errorf("expected model source, got %s", resp.Source)
	}

	saved := repo.chapters[resp.ID]
	for i, c := range saved {
		if c.OrderIndex != i+1 {
			t.Errorf("chapter %d: expected order_index %d, got %d", i, i+1, c.OrderIndex)
		}
		if want := fmt.Sprintf("第%d章", 5-i); c.Title != want {
			t.Errorf("chapter order must follow the array: expected %q, got %q", want, c.Title)
		}
	}
}

func TestGenerateFallbackFromMockNotice(t *testing.T) {
	intent := &intention.LearningIntention{
		ID:    uuid.New(),
		Topic: "Go并发",
		Goal:  "",
	}
	// The keyless provider returns a prose notice, which never parses.
	provider := &stubProvider{reply: "模拟AI响应：请配置MINIMAX_API_KEY以使用真实AI"}
	repo := newStubRepo()
	service := NewService(repo, &stubIntentions{intention: intent}, provider)

	resp, err := service.Generate(context.Background(), intent.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Source != ai.SourceFallback {
		t.Fatalf("expected fallback source, got %s", resp.Source)
	}
	if resp.CourseTitle != "Go并发学习课程" {
		t.Errorf("unexpected fallback title: %s", resp.CourseTitle)
	}
	if resp.ChaptersCount != 3 {
		t.Errorf("expected 3 fallback chapters, got %d", resp.ChaptersCount)
	}
	for _, c := range repo.chapters[resp.ID] {
		if c.LearningMethod != "理论+实践" {
			t.Errorf("fallback chapters must use the default preference: %+v", c)
		}
		if c.EstimatedDuration != 30 {
			t.Errorf("fallback chapters must use the default duration: %+v", c)
		}
	}
}

func TestGenerateRejectsUnansweredQuestions(t *testing.T) {
	intent := &intention.LearningIntention{ID: uuid.New(), Topic: "Go并发"}
	service := NewService(newStubRepo(), &stubIntentions{intention: intent, remaining: 2}, &stubProvider{})

	_, err := service.Generate(context.Background(), intent.ID)

	var remaining *QuestionsRemainingError
	if !errors.As(err, &remaining) {
		t.Fatalf("expected QuestionsRemainingError, got %v", err)
	}
	if remaining.Remaining != 2 {
		t.Errorf("expected remaining=2, got %d", remaining.Remaining)
	}
}

func TestGenerateUnknownIntention(t *testing.T) {
	service := NewService(newStubRepo(), &stubIntentions{}, &stubProvider{})

	_, err := service.Generate(context.Background(), uuid.New())
	if !errors.Is(err, intention.ErrNotFound) {
		t.Fatalf("expected intention.ErrNotFound, got %v", err)
	}
}

func TestChapterContentFallbackOnTransportError(t *testing.T) {
	intent := &intention.LearningIntention{ID: uuid.New(), Topic: "Go并发"}
	repo := newStubRepo()
	stub := &stubIntentions{intention: intent}

	okService := NewService(repo, stub, &stubProvider{reply: "```json\n{\"course_title\": \"课程\", \"chapters\": [{\"title\": \"第一章\", \"learning_goal\": \"入门\"}]}\n```"})
	resp, err := okService.Generate(context.Background(), intent.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	chapterID := repo.chapters[resp.ID][0].ID

	failing := NewService(repo, stub, &stubProvider{err: &ai.TransportError{Err: errors.New("connection refused")}})
	content, err := failing.ChapterContent(context.Background(), chapterID)
	if err != nil {
		t.Fatalf("ChapterContent must absorb transport errors: %v", err)
	}
	if content.Source != ai.SourceFallback {
		t.Errorf("expected fallback source, got %s", content.Source)
	}
	if content.Content == "" {
		t.Error("fallback content must not be empty")
	}
	if content.PlanTitle != "课程" {
		t.Errorf("unexpected plan title: %s", content.PlanTitle)
	}
}

func TestChapterContentFallbackOnMockNotice(t *testing.T) {
	intent := &intention.LearningIntention{ID: uuid.New(), Topic: "Go并发"}
	repo := newStubRepo()
	stub := &stubIntentions{intention: intent}

	okService := NewService(repo, stub, &stubProvider{reply: "```json\n{\"course_title\": \"课程\", \"chapters\": [{\"title\": \"第一章\", \"learning_goal\": \"入门\"}]}\n```"})
	resp, err := okService.Generate(context.Background(), intent.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	chapterID := repo.chapters[resp.ID][0].ID

	// A keyless provider answers with the canned notice; that is not
	// chapter content and must not be labeled as model output.
	keyless := NewService(repo, stub, &stubProvider{reply: ai.MockNotice})
	content, err := keyless.ChapterContent(context.Background(), chapterID)
	if err != nil {
		t.Fatalf("ChapterContent failed: %v", err)
	}
	if content.Source != ai.SourceFallback {
		t.Errorf("expected fallback source for the mock notice, got %s", content.Source)
	}
	if content.Content == ai.MockNotice {
		t.Error("the mock notice must be replaced by the fallback content")
	}
	if content.Content == "" {
		t.Error("fallback content must not be empty")
	}
}
