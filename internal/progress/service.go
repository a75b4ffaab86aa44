package progress

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/charlie-ai-lab/personality-learn/internal/config"
)

var ErrNotFound = errors.New("progress not found")

type Service interface {
	Start(ctx context.Context, chapterID uuid.UUID) (*LearningProgress, error)
	Complete(ctx context.Context, chapterID uuid.UUID, selfAssessment string) (*LearningProgress, error)
	Get(ctx context.Context, chapterID uuid.UUID) (*LearningProgress, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Start upserts the chapter's progress row into in_progress. A repeated
// start updates the existing row instead of creating a second one.
func (s *service) Start(ctx context.Context, chapterID uuid.UUID) (*LearningProgress, error) {
	log := config.WithContext(ctx)

	now := time.Now()
	existing, err := s.repo.FindByChapter(chapterID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Status = StatusInProgress
		existing.StartedAt = &now
		if err := s.repo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p := LearningProgress{
		ID:        uuid.New(),
		ChapterID: chapterID,
		Status:    StatusInProgress,
		StartedAt: &now,
	}
	if err := s.repo.Create(&p); err != nil {
		return nil, err
	}

	log.WithField("chapter_id", chapterID).Info("Chapter started")
	return &p, nil
}

// Complete upserts the chapter's progress row into completed. A complete
// with no prior start creates the row directly in the completed state.
func (s *service) Complete(ctx context.Context, chapterID uuid.UUID, selfAssessment string) (*LearningProgress, error) {
	log := config.WithContext(ctx)

	now := time.Now()
	existing, err := s.repo.FindByChapter(chapterID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Status = StatusCompleted
		existing.CompletedAt = &now
		existing.UserSelfAssessment = selfAssessment
		if err := s.repo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p := LearningProgress{
		ID:                 uuid.New(),
		ChapterID:          chapterID,
		Status:             StatusCompleted,
		CompletedAt:        &now,
		UserSelfAssessment: selfAssessment,
	}
	if err := s.repo.Create(&p); err != nil {
		return nil, err
	}

	log.WithField("chapter_id", chapterID).Info("Chapter completed")
	return &p, nil
}

func (s *service) Get(ctx context.Context, chapterID uuid.UUID) (*LearningProgress, error) {
	p, err := s.repo.FindByChapter(chapterID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}
