package assessment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateQuestions(questions []*AssessmentQuestion) error
	FindQuestionByID(id uuid.UUID) (*AssessmentQuestion, error)
	CreateAnswer(answer *UserAnswer) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateQuestions(questions []*AssessmentQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *repository) FindQuestionByID(id uuid.UUID) (*AssessmentQuestion, error) {
	var question AssessmentQuestion
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *repository) CreateAnswer(answer *UserAnswer) error {
	return r.db.Create(answer).Error
}
