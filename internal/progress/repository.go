package progress

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByChapter(chapterID uuid.UUID) (*LearningProgress, error)
	Create(p *LearningProgress) error
	Update(p *LearningProgress) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByChapter(chapterID uuid.UUID) (*LearningProgress, error) {
	var p LearningProgress
	if err := r.db.First(&p, "chapter_id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(p *LearningProgress) error {
	return r.db.Create(p).Error
}

func (r *repository) Update(p *LearningProgress) error {
	return r.db.Save(p).Error
}
