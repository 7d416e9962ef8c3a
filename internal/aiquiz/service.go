package aiquiz

import (
	"context"
	"errors"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
)

type Service interface {
	// GenerateDrafts asks the model for candidate questions. Nothing is
	// persisted; malformed drafts are dropped before returning.
	GenerateDrafts(ctx context.Context, dto GenerateDraftsDTO) ([]DraftQuestion, error)
	// SaveDraft turns one reviewed draft into a real question.
	SaveDraft(ctx context.Context, dto SaveDraftDTO) (*question.Question, error)
}

type service struct {
	provider     Provider
	questions    question.QuestionService
	subtopicRepo subtopic.SubtopicRepository
}

func NewService(provider Provider, questions question.QuestionService, subtopicRepo subtopic.SubtopicRepository) Service {
	return &service{
		provider:     provider,
		questions:    questions,
		subtopicRepo: subtopicRepo,
	}
}

func validDraft(d DraftQuestion) bool {
	if d.Text == "" || len(d.Options) != question.OptionsPerQuestion {
		return false
	}
	if d.CorrectIndex < 1 || d.CorrectIndex > question.OptionsPerQuestion {
		return false
	}
	for _, o := range d.Options {
		if o == "" {
			return false
		}
	}
	return true
}

func (s *service) GenerateDrafts(ctx context.Context, dto GenerateDraftsDTO) ([]DraftQuestion, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if !dto.Difficulty.IsValid() {
		return nil, apperror.Validation("invalid difficulty %q", dto.Difficulty)
	}

	if s.provider == nil {
		return nil, errors.New("question drafting is not configured")
	}

	parent, err := s.subtopicRepo.FindByID(dto.SubtopicID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("subtopic %d not found", dto.SubtopicID)
	}

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, buildUserPrompt(parent.Name, dto))
	if err != nil {
		return nil, err
	}

	kept := make([]DraftQuestion, 0, len(drafts))
	for _, d := range drafts {
		if validDraft(d) {
			kept = append(kept, d)
		}
	}
	if dropped := len(drafts) - len(kept); dropped > 0 {
		log.Warnf("Dropped %d malformed draft questions", dropped)
	}

	return kept, nil
}

func (s *service) SaveDraft(ctx context.Context, dto SaveDraftDTO) (*question.Question, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if !validDraft(dto.Draft) {
		return nil, apperror.Validation("draft is incomplete or malformed")
	}

	return s.questions.Create(ctx, question.CreateQuestionDTO{
		SubtopicID:   dto.SubtopicID,
		Text:         dto.Draft.Text,
		Difficulty:   dto.Difficulty,
		TimeLimit:    dto.TimeLimit,
		Options:      dto.Draft.Options,
		CorrectIndex: dto.Draft.CorrectIndex,
	})
}
