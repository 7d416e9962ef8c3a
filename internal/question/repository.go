package question

import (
	"errors"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateWithOptions(q *Question, options []Option) error
	UpdateWithOptions(q *Question, options []Option) error
	ReplaceOptions(questionID uint, options []Option) error
	FindByID(id uint) (*Question, error)
	FindOptionByID(id uint) (*Option, error)
	ListBySubtopic(subtopicID uint, difficulty Difficulty) ([]Question, error)
	ListOptions(questionID uint) ([]Option, error)
	Delete(id uint) error
	CountBySubtopicAndDifficulty(subtopicID uint, difficulty string) (int64, error)
	Count() (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// CreateWithOptions persists the question and its options in one
// transaction so a mid-sequence failure leaves nothing behind.
func (r *questionRepository) CreateWithOptions(q *Question, options []Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = q.ID
		}
		return tx.Create(&options).Error
	})
}

func (r *questionRepository) UpdateWithOptions(q *Question, options []Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(q).Error; err != nil {
			return err
		}
		return replaceOptionsTx(tx, q.ID, options)
	})
}

// ReplaceOptions swaps the full option set of a question atomically.
func (r *questionRepository) ReplaceOptions(questionID uint, options []Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceOptionsTx(tx, questionID, options)
	})
}

func replaceOptionsTx(tx *gorm.DB, questionID uint, options []Option) error {
	if err := tx.Where("question_id = ?", questionID).Delete(&Option{}).Error; err != nil {
		return err
	}
	for i := range options {
		options[i].ID = 0
		options[i].QuestionID = questionID
	}
	return tx.Create(&options).Error
}

func (r *questionRepository) FindByID(id uint) (*Question, error) {
	var q Question
	if err := r.db.Preload("Options").First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) FindOptionByID(id uint) (*Option, error) {
	var o Option
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// ListBySubtopic orders by id ascending, which is the quiz sequence order.
func (r *questionRepository) ListBySubtopic(subtopicID uint, difficulty Difficulty) ([]Question, error) {
	q := r.db.Preload("Options").Where("subtopic_id = ?", subtopicID)
	if difficulty != DifficultyAll {
		q = q.Where("difficulty = ?", difficulty)
	}

	var questions []Question
	if err := q.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListOptions(questionID uint) ([]Option, error) {
	var options []Option
	if err := r.db.Where("question_id = ?", questionID).Order("id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Delete removes the question row; options and user answers go with it via
// the ON DELETE CASCADE constraints.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *questionRepository) CountBySubtopicAndDifficulty(subtopicID uint, difficulty string) (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).
		Where("subtopic_id = ? AND difficulty = ?", subtopicID, difficulty).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
