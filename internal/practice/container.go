package practice

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"gorm.io/gorm"
)

type PracticeContainer struct {
	Handler *Handler
	Service PracticeService
	Repo    PracticeRepository
}

func NewPracticeContainer(db *gorm.DB, questionRepo question.QuestionRepository, streaks StreakToucher) *PracticeContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo, streaks)
	handler := NewHandler(service)

	return &PracticeContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
