package plan

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateWithChapters(plan *LearningPlan, chapters []*Chapter) error
	FindByID(id uuid.UUID) (*LearningPlan, error)
	FindAll() ([]PlanListItem, error)
	FindChapterByID(id uuid.UUID) (*Chapter, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithChapters(plan *LearningPlan, chapters []*Chapter) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range chapters {
			chapters[i].PlanID = plan.ID
		}
		if len(chapters) > 0 {
			if err := tx.Create(&chapters).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) FindByID(id uuid.UUID) (*LearningPlan, error) {
	var plan LearningPlan
	if err := r.db.
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *repository) FindAll() ([]PlanListItem, error) {
	var items []PlanListItem
	if err := r.db.
		Table("learning_plans").
		Select("learning_plans.id, learning_plans.intention_id, learning_plans.course_title, learning_plans.created_at, li.topic, li.goal").
		Joins("JOIN learning_intentions li ON li.id = learning_plans.intention_id").
		Order("learning_plans.created_at DESC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindChapterByID(id uuid.UUID) (*Chapter, error) {
	var chapter Chapter
	if err := r.db.First(&chapter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chapter, nil
}
