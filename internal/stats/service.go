package stats

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	topics    topic.TopicRepository
	subtopics subtopic.SubtopicRepository
	questions question.QuestionRepository
	users     user.UserRepository
}

func NewService(
	topics topic.TopicRepository,
	subtopics subtopic.SubtopicRepository,
	questions question.QuestionRepository,
	users user.UserRepository,
) StatsService {
	return &statsService{
		topics:    topics,
		subtopics: subtopics,
		questions: questions,
		users:     users,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	out := &DashboardStats{}
	var err error

	if out.TopicCount, err = s.topics.Count(); err != nil {
		return nil, err
	}
	if out.SubtopicCount, err = s.subtopics.Count(); err != nil {
		return nil, err
	}
	if out.QuestionCount, err = s.questions.Count(); err != nil {
		return nil, err
	}
	if out.StudentCount, err = s.users.CountByRole(user.RoleStudent); err != nil {
		return nil, err
	}

	return out, nil
}
