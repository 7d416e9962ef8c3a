package container

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/lesson"
	"github.com/Prathapkumar-67/aptitude-website/internal/notification"
	"github.com/Prathapkumar-67/aptitude-website/internal/practice"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/streak"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
)

func migrate() error {
	if err := config.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return config.DB.AutoMigrate(
		&user.User{},
		&topic.Topic{},
		&subtopic.Subtopic{},
		&question.Question{},
		&question.Option{},
		&lesson.VideoLesson{},
		&lesson.Note{},
		&lesson.Resource{},
		&practice.UserAnswer{},
		&streak.UserStreak{},
		&notification.NotificationSetting{},
	)
}
