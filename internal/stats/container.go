package stats

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
)

type StatsContainer struct {
	Handler *Handler
	Service StatsService
}

func NewStatsContainer(
	topics topic.TopicRepository,
	subtopics subtopic.SubtopicRepository,
	questions question.QuestionRepository,
	users user.UserRepository,
) *StatsContainer {
	service := NewService(topics, subtopics, questions, users)
	handler := NewHandler(service)

	return &StatsContainer{
		Handler: handler,
		Service: service,
	}
}
