package aiquiz

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	log "github.com/sirupsen/logrus"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(questions question.QuestionService, subtopicRepo subtopic.SubtopicRepository) *AIQuizContainer {
	provider, err := NewGeminiProvider(context.Background())
	if err != nil {
		// The rest of the API stays up; draft endpoints report the
		// missing configuration instead of panicking.
		log.WithError(err).Warn("Gemini provider unavailable, question drafting disabled")
	}
	service := NewService(provider, questions, subtopicRepo)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
