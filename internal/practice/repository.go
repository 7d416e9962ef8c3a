package practice

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeRepository interface {
	CreateAnswer(a *UserAnswer) error
	ListAnswersByUser(userID uuid.UUID) ([]UserAnswer, error)
	CountDistinctSolved(userID uuid.UUID, subtopicID uint, difficulty string) (int64, error)
}

type practiceRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PracticeRepository {
	return &practiceRepository{db: db}
}

func (r *practiceRepository) CreateAnswer(a *UserAnswer) error {
	return r.db.Create(a).Error
}

func (r *practiceRepository) ListAnswersByUser(userID uuid.UUID) ([]UserAnswer, error) {
	var answers []UserAnswer
	if err := r.db.
		Where("user_id = ?", userID).
		Order("answered_at DESC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// CountDistinctSolved counts questions the user has answered at least once
// within a (subtopic, difficulty) set. Repeat attempts count a question once.
func (r *practiceRepository) CountDistinctSolved(userID uuid.UUID, subtopicID uint, difficulty string) (int64, error) {
	var count int64
	q := r.db.Table("user_answers").
		Joins("JOIN questions ON questions.id = user_answers.question_id").
		Where("user_answers.user_id = ? AND questions.subtopic_id = ?", userID, subtopicID)
	if difficulty != "all" {
		q = q.Where("questions.difficulty = ?", difficulty)
	}
	if err := q.Distinct("user_answers.question_id").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
