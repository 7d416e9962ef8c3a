package lesson

import (
	"errors"

	"gorm.io/gorm"
)

type LessonRepository interface {
	CreateVideo(v *VideoLesson) error
	FindVideoByID(id uint) (*VideoLesson, error)
	FirstVideoBySubtopic(subtopicID uint) (*VideoLesson, error)
	UpdateVideo(v *VideoLesson) error
	DeleteVideo(id uint) error

	CreateNote(n *Note) error
	FindNoteByID(id uint) (*Note, error)
	ListNotesBySubtopic(subtopicID uint) ([]Note, error)
	UpdateNote(n *Note) error
	DeleteNote(id uint) error

	CreateResource(res *Resource) error
	FindResourceByID(id uint) (*Resource, error)
	ListResourcesBySubtopic(subtopicID uint) ([]Resource, error)
	UpdateResource(res *Resource) error
	DeleteResource(id uint) error
}

type lessonRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) CreateVideo(v *VideoLesson) error {
	return r.db.Create(v).Error
}

func (r *lessonRepository) FindVideoByID(id uint) (*VideoLesson, error) {
	var v VideoLesson
	if err := r.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// FirstVideoBySubtopic returns the oldest video of the subtopic, or nil when
// none exists yet.
func (r *lessonRepository) FirstVideoBySubtopic(subtopicID uint) (*VideoLesson, error) {
	var v VideoLesson
	err := r.db.Where("subtopic_id = ?", subtopicID).Order("id ASC").First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *lessonRepository) UpdateVideo(v *VideoLesson) error {
	return r.db.Save(v).Error
}

func (r *lessonRepository) DeleteVideo(id uint) error {
	return r.db.Delete(&VideoLesson{}, "id = ?", id).Error
}

func (r *lessonRepository) CreateNote(n *Note) error {
	return r.db.Create(n).Error
}

func (r *lessonRepository) FindNoteByID(id uint) (*Note, error) {
	var n Note
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *lessonRepository) ListNotesBySubtopic(subtopicID uint) ([]Note, error) {
	var notes []Note
	if err := r.db.Where("subtopic_id = ?", subtopicID).Order("id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *lessonRepository) UpdateNote(n *Note) error {
	return r.db.Save(n).Error
}

func (r *lessonRepository) DeleteNote(id uint) error {
	return r.db.Delete(&Note{}, "id = ?", id).Error
}

func (r *lessonRepository) CreateResource(res *Resource) error {
	return r.db.Create(res).Error
}

func (r *lessonRepository) FindResourceByID(id uint) (*Resource, error) {
	var res Resource
	if err := r.db.First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *lessonRepository) ListResourcesBySubtopic(subtopicID uint) ([]Resource, error) {
	var resources []Resource
	if err := r.db.Where("subtopic_id = ?", subtopicID).Order("id ASC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *lessonRepository) UpdateResource(res *Resource) error {
	return r.db.Save(res).Error
}

func (r *lessonRepository) DeleteResource(id uint) error {
	return r.db.Delete(&Resource{}, "id = ?", id).Error
}
