package lesson

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"gorm.io/gorm"
)

type LessonContainer struct {
	Handler *Handler
	Service LessonService
	Repo    LessonRepository
}

func NewLessonContainer(db *gorm.DB, subtopicRepo subtopic.SubtopicRepository) *LessonContainer {
	repo := NewRepository(db)
	service := NewService(repo, subtopicRepo)
	handler := NewHandler(service)

	return &LessonContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
