package question

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
)

type QuestionService interface {
	Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	Update(ctx context.Context, id uint, dto UpdateQuestionDTO) (*Question, error)
	ReplaceOptions(ctx context.Context, questionID uint, dto ReplaceOptionsDTO) (*Question, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Question, error)
	ListBySubtopic(ctx context.Context, subtopicID uint, difficulty Difficulty) ([]Question, error)
}

type questionService struct {
	repo         QuestionRepository
	subtopicRepo subtopic.SubtopicRepository
}

func NewService(repo QuestionRepository, subtopicRepo subtopic.SubtopicRepository) QuestionService {
	return &questionService{
		repo:         repo,
		subtopicRepo: subtopicRepo,
	}
}

// buildOptions validates the four-option contract and tags the correct one.
// correctIndex is 1-based, matching the curator form.
func buildOptions(texts []string, correctIndex int) ([]Option, error) {
	if len(texts) != OptionsPerQuestion {
		return nil, apperror.Validation("expected %d options, got %d", OptionsPerQuestion, len(texts))
	}
	if correctIndex < 1 || correctIndex > OptionsPerQuestion {
		return nil, apperror.Validation("correct_index must be between 1 and %d", OptionsPerQuestion)
	}

	options := make([]Option, 0, OptionsPerQuestion)
	for i, text := range texts {
		if text == "" {
			return nil, apperror.Validation("option %d is empty", i+1)
		}
		options = append(options, Option{
			Text:      text,
			IsCorrect: i+1 == correctIndex,
		})
	}
	return options, nil
}

func (s *questionService) Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if !dto.Difficulty.IsValid() {
		return nil, apperror.Validation("invalid difficulty %q", dto.Difficulty)
	}
	if dto.TimeLimit <= 0 {
		dto.TimeLimit = 60
	}

	options, err := buildOptions(dto.Options, dto.CorrectIndex)
	if err != nil {
		return nil, err
	}

	parent, err := s.subtopicRepo.FindByID(dto.SubtopicID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("subtopic %d not found", dto.SubtopicID)
	}

	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	q := Question{
		SubtopicID:  dto.SubtopicID,
		Difficulty:  dto.Difficulty,
		Text:        dto.Text,
		TimeLimit:   dto.TimeLimit,
		CreatedByID: &actorID,
	}
	if err := s.repo.CreateWithOptions(&q, options); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}
	q.Options = options

	log.Infof("Created question %d in subtopic %d", q.ID, q.SubtopicID)
	return &q, nil
}

func (s *questionService) Update(ctx context.Context, id uint, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if !dto.Difficulty.IsValid() {
		return nil, apperror.Validation("invalid difficulty %q", dto.Difficulty)
	}
	if dto.TimeLimit <= 0 {
		dto.TimeLimit = 60
	}

	options, err := buildOptions(dto.Options, dto.CorrectIndex)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NotFound("question %d not found", id)
	}

	q.Text = dto.Text
	q.Difficulty = dto.Difficulty
	q.TimeLimit = dto.TimeLimit
	q.Options = nil

	if err := s.repo.UpdateWithOptions(q, options); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}
	q.Options = options
	return q, nil
}

func (s *questionService) ReplaceOptions(ctx context.Context, questionID uint, dto ReplaceOptionsDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	options, err := buildOptions(dto.Options, dto.CorrectIndex)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.FindByID(questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NotFound("question %d not found", questionID)
	}

	if err := s.repo.ReplaceOptions(questionID, options); err != nil {
		log.WithError(err).Error("Failed to replace options")
		return nil, err
	}
	q.Options = options
	return q, nil
}

func (s *questionService) Delete(ctx context.Context, id uint) error {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return err
	}

	q, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return apperror.NotFound("question %d not found", id)
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	log.Infof("Deleted question %d", id)
	return nil
}

func (s *questionService) GetByID(ctx context.Context, id uint) (*Question, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NotFound("question %d not found", id)
	}
	return q, nil
}

func (s *questionService) ListBySubtopic(ctx context.Context, subtopicID uint, difficulty Difficulty) ([]Question, error) {
	if !difficulty.IsValidFilter() {
		return nil, apperror.Validation("invalid difficulty filter %q", difficulty)
	}

	parent, err := s.subtopicRepo.FindByID(subtopicID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("subtopic %d not found", subtopicID)
	}

	return s.repo.ListBySubtopic(subtopicID, difficulty)
}
