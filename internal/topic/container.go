package topic

import "gorm.io/gorm"

type TopicContainer struct {
	Handler *Handler
	Service TopicService
	Repo    TopicRepository
}

func NewTopicContainer(db *gorm.DB) *TopicContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TopicContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
