package intention

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(intention *LearningIntention) error
	FindByID(id uuid.UUID) (*LearningIntention, error)
	FindAll() ([]LearningIntention, error)

	CreateQuestions(questions []*ClarificationQuestion) error
	FindQuestionByID(id uuid.UUID) (*ClarificationQuestion, error)
	FindUnansweredQuestions(intentionID uuid.UUID) ([]ClarificationQuestion, error)
	CountQuestions(intentionID uuid.UUID) (int64, error)
	CountUnanswered(intentionID uuid.UUID) (int64, error)
	MarkAnswered(questionID uuid.UUID) error

	CreateAnswer(answer *ClarificationAnswer) error
	FindAnsweredPairs(intentionID uuid.UUID) ([]AnsweredPair, error)
}

// AnsweredPair joins a clarification question with its recorded answer.
type AnsweredPair struct {
	Question string
	Answer   string
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(intention *LearningIntention) error {
	return r.db.Create(intention).Error
}

func (r *repository) FindByID(id uuid.UUID) (*LearningIntention, error) {
	var intention LearningIntention
	if err := r.db.First(&intention, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &intention, nil
}

func (r *repository) FindAll() ([]LearningIntention, error) {
	var intentions []LearningIntention
	if err := r.db.Order("created_at DESC").Find(&intentions).Error; err != nil {
		return nil, err
	}
	return intentions, nil
}

func (r *repository) CreateQuestions(questions []*ClarificationQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *repository) FindQuestionByID(id uuid.UUID) (*ClarificationQuestion, error) {
	var question ClarificationQuestion
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *repository) FindUnansweredQuestions(intentionID uuid.UUID) ([]ClarificationQuestion, error) {
	var questions []ClarificationQuestion
	if err := r.db.
		Where("intention_id = ? AND answered = ?", intentionID, false).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) CountQuestions(intentionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&ClarificationQuestion{}).
		Where("intention_id = ?", intentionID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountUnanswered(intentionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&ClarificationQuestion{}).
		Where("intention_id = ? AND answered = ?", intentionID, false).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkAnswered(questionID uuid.UUID) error {
	return r.db.Model(&ClarificationQuestion{}).
		Where("id = ?", questionID).
		Update("answered", true).Error
}

func (r *repository) CreateAnswer(answer *ClarificationAnswer) error {
	return r.db.Create(answer).Error
}

func (r *repository) FindAnsweredPairs(intentionID uuid.UUID) ([]AnsweredPair, error) {
	var pairs []AnsweredPair
	if err := r.db.
		Table("clarification_answers").
		Select("clarification_questions.question AS question, clarification_answers.answer AS answer").
		Joins("JOIN clarification_questions ON clarification_questions.id = clarification_answers.question_id").
		Where("clarification_answers.intention_id = ?", intentionID).
		Order("clarification_questions.order_index ASC").
		Scan(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}
