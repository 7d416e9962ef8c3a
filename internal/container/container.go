package container

import (
	"context"
	"log"
	"os"

	"github.com/Prathapkumar-67/aptitude-website/internal/aiquiz"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/lesson"
	"github.com/Prathapkumar-67/aptitude-website/internal/notification"
	"github.com/Prathapkumar-67/aptitude-website/internal/practice"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/stats"
	"github.com/Prathapkumar-67/aptitude-website/internal/streak"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
)

type Container struct {
	UserContainer         *user.UserContainer
	TopicContainer        *topic.TopicContainer
	SubtopicContainer     *subtopic.SubtopicContainer
	QuestionContainer     *question.QuestionContainer
	LessonContainer       *lesson.LessonContainer
	PracticeContainer     *practice.PracticeContainer
	StreakContainer       *streak.StreakContainer
	NotificationContainer *notification.NotificationContainer
	StatsContainer        *stats.StatsContainer
	AIQuizContainer       *aiquiz.AIQuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := migrate(); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	topicContainer := topic.NewTopicContainer(config.DB)
	questionRepo := question.NewRepository(config.DB)
	subtopicContainer := subtopic.NewSubtopicContainer(config.DB, topicContainer.Repo, questionRepo)
	questionContainer := question.NewQuestionContainer(config.DB, subtopicContainer.Repo)
	lessonContainer := lesson.NewLessonContainer(config.DB, subtopicContainer.Repo)
	streakContainer := streak.NewStreakContainer(config.DB)
	practiceContainer := practice.NewPracticeContainer(config.DB, questionContainer.Repo, streakContainer.Service)
	notificationContainer := notification.NewNotificationContainer(config.DB)
	statsContainer := stats.NewStatsContainer(
		topicContainer.Repo,
		subtopicContainer.Repo,
		questionContainer.Repo,
		userContainer.Repo,
	)
	aiQuizContainer := aiquiz.NewAIQuizContainer(questionContainer.Service, subtopicContainer.Repo)

	return &Container{
		UserContainer:         userContainer,
		TopicContainer:        topicContainer,
		SubtopicContainer:     subtopicContainer,
		QuestionContainer:     questionContainer,
		LessonContainer:       lessonContainer,
		PracticeContainer:     practiceContainer,
		StreakContainer:       streakContainer,
		NotificationContainer: notificationContainer,
		StatsContainer:        statsContainer,
		AIQuizContainer:       aiQuizContainer,
	}
}
