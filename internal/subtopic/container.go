package subtopic

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"gorm.io/gorm"
)

type SubtopicContainer struct {
	Handler *Handler
	Service SubtopicService
	Repo    SubtopicRepository
}

func NewSubtopicContainer(db *gorm.DB, topicRepo topic.TopicRepository, questions QuestionCounter) *SubtopicContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicRepo, questions)
	handler := NewHandler(service)

	return &SubtopicContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
