package question

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
	Repo    QuestionRepository
}

func NewQuestionContainer(db *gorm.DB, subtopicRepo subtopic.SubtopicRepository) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, subtopicRepo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
