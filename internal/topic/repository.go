package topic

import (
	"errors"

	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(t *Topic) error
	FindByID(id uint) (*Topic, error)
	FindAll() ([]Topic, error)
	ListByCategory(category Category, exclude []string) ([]Topic, error)
	Update(t *Topic) error
	Delete(id uint) error
	CountSubtopics(topicID uint) (int64, error)
	Count() (int64, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

// Create assigns the next display_order inside one transaction. The table
// lock serializes concurrent creations so the max+1 read cannot race.
func (r *topicRepository) Create(t *Topic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE topics IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}
		var next int
		if err := tx.Model(&Topic{}).
			Select("COALESCE(MAX(display_order), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		t.DisplayOrder = next
		return tx.Create(t).Error
	})
}

func (r *topicRepository) FindByID(id uint) (*Topic, error) {
	var t Topic
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *topicRepository) FindAll() ([]Topic, error) {
	var topics []Topic
	if err := r.db.Order("display_order ASC, id ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) ListByCategory(category Category, exclude []string) ([]Topic, error) {
	q := r.db.Where("category = ?", category)
	if len(exclude) > 0 {
		q = q.Where("name NOT IN ?", exclude)
	}

	var topics []Topic
	if err := q.Order("display_order ASC, id ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) Update(t *Topic) error {
	return r.db.Save(t).Error
}

func (r *topicRepository) Delete(id uint) error {
	return r.db.Delete(&Topic{}, "id = ?", id).Error
}

func (r *topicRepository) CountSubtopics(topicID uint) (int64, error) {
	var count int64
	if err := r.db.Table("subtopics").Where("topic_id = ?", topicID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *topicRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Topic{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
