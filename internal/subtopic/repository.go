package subtopic

import (
	"errors"

	"gorm.io/gorm"
)

type SubtopicRepository interface {
	Create(s *Subtopic) error
	FindByID(id uint) (*Subtopic, error)
	ListByTopic(topicID uint) ([]Subtopic, error)
	Update(s *Subtopic) error
	Delete(id uint) error
	CountQuestions(subtopicID uint) (int64, error)
	CountByTopic(topicID uint) (int64, error)
	Count() (int64, error)
}

type subtopicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SubtopicRepository {
	return &subtopicRepository{db: db}
}

// Create assigns the next display_order within the owning topic, locked the
// same way topic creation is.
func (r *subtopicRepository) Create(s *Subtopic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE subtopics IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}
		var next int
		if err := tx.Model(&Subtopic{}).
			Where("topic_id = ?", s.TopicID).
			Select("COALESCE(MAX(display_order), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		s.DisplayOrder = next
		return tx.Create(s).Error
	})
}

func (r *subtopicRepository) FindByID(id uint) (*Subtopic, error) {
	var s Subtopic
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *subtopicRepository) ListByTopic(topicID uint) ([]Subtopic, error) {
	var subtopics []Subtopic
	if err := r.db.
		Where("topic_id = ?", topicID).
		Order("display_order ASC, id ASC").
		Find(&subtopics).Error; err != nil {
		return nil, err
	}
	return subtopics, nil
}

func (r *subtopicRepository) Update(s *Subtopic) error {
	return r.db.Save(s).Error
}

func (r *subtopicRepository) Delete(id uint) error {
	return r.db.Delete(&Subtopic{}, "id = ?", id).Error
}

func (r *subtopicRepository) CountQuestions(subtopicID uint) (int64, error) {
	var count int64
	if err := r.db.Table("questions").Where("subtopic_id = ?", subtopicID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *subtopicRepository) CountByTopic(topicID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&Subtopic{}).Where("topic_id = ?", topicID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *subtopicRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Subtopic{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
