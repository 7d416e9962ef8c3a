package practice

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/google/uuid"
)

// StreakToucher records daily engagement. Implemented by the streak service.
type StreakToucher interface {
	Touch(ctx context.Context, userID uuid.UUID) error
}

type PracticeService interface {
	QuestionAt(ctx context.Context, subtopicID uint, difficulty question.Difficulty, index int) (*QuizStep, error)
	SubmitAnswer(ctx context.Context, dto SubmitAnswerDTO) (*SubmitAnswerResponse, error)
	Progress(ctx context.Context, subtopicID uint, difficulty question.Difficulty) (*ProgressSummary, error)
	History(ctx context.Context) ([]UserAnswer, error)
}

type practiceService struct {
	repo         PracticeRepository
	questionRepo question.QuestionRepository
	streaks      StreakToucher
}

func NewService(repo PracticeRepository, questionRepo question.QuestionRepository, streaks StreakToucher) PracticeService {
	return &practiceService{
		repo:         repo,
		questionRepo: questionRepo,
		streaks:      streaks,
	}
}

// QuestionAt resolves one position of the quiz sequence: the questions of a
// (subtopic, difficulty) pair ordered by id ascending. The caller carries the
// index between requests; nothing about the position is persisted here.
func (s *practiceService) QuestionAt(ctx context.Context, subtopicID uint, difficulty question.Difficulty, index int) (*QuizStep, error) {
	if index < 0 {
		return nil, apperror.Validation("index must not be negative")
	}
	if !difficulty.IsValid() {
		return nil, apperror.Validation("invalid difficulty %q", difficulty)
	}

	questions, err := s.questionRepo.ListBySubtopic(subtopicID, difficulty)
	if err != nil {
		return nil, err
	}

	step := &QuizStep{Index: index, TotalQuestions: int64(len(questions))}

	if len(questions) == 0 {
		step.Status = StatusNoQuestions
		return step, nil
	}
	if index >= len(questions) {
		step.Status = StatusCompleted
		return step, nil
	}

	q := questions[index]
	step.Status = StatusInProgress
	step.Options = toQuizOptions(q.Options)
	q.Options = nil
	step.Question = &q
	return step, nil
}

// toQuizOptions strips correctness from options before they reach a student.
func toQuizOptions(options []question.Option) []QuizOption {
	out := make([]QuizOption, len(options))
	for i, o := range options {
		out[i] = QuizOption{ID: o.ID, Text: o.Text}
	}
	return out
}

// SubmitAnswer scores the chosen option and appends the result to the answer
// log. Correctness is read off the option now and stored on the row, so the
// historical record survives later option edits.
func (s *practiceService) SubmitAnswer(ctx context.Context, dto SubmitAnswerDTO) (*SubmitAnswerResponse, error) {
	log := config.WithContext(ctx)

	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if dto.TimeTaken < 0 {
		return nil, apperror.Validation("time_taken must not be negative")
	}

	q, err := s.questionRepo.FindByID(dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NotFound("question %d not found", dto.QuestionID)
	}

	opt, err := s.questionRepo.FindOptionByID(dto.OptionID)
	if err != nil {
		return nil, err
	}
	if opt == nil || opt.QuestionID != dto.QuestionID {
		return nil, apperror.NotFound("option %d does not belong to question %d", dto.OptionID, dto.QuestionID)
	}

	answer := UserAnswer{
		UserID:     userID,
		QuestionID: dto.QuestionID,
		OptionID:   dto.OptionID,
		IsCorrect:  opt.IsCorrect,
		TimeTaken:  dto.TimeTaken,
	}
	if err := s.repo.CreateAnswer(&answer); err != nil {
		log.WithError(err).Error("Failed to record answer")
		return nil, err
	}

	if err := s.streaks.Touch(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to update streak")
	}

	return &SubmitAnswerResponse{
		Answer:    answer,
		NextIndex: dto.Index + 1,
	}, nil
}

// Progress reports the user's position in a (subtopic, difficulty) set.
// A question answered more than once still counts as solved once.
func (s *practiceService) Progress(ctx context.Context, subtopicID uint, difficulty question.Difficulty) (*ProgressSummary, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if !difficulty.IsValidFilter() {
		return nil, apperror.Validation("invalid difficulty filter %q", difficulty)
	}

	questions, err := s.questionRepo.ListBySubtopic(subtopicID, difficulty)
	if err != nil {
		return nil, err
	}

	solved, err := s.repo.CountDistinctSolved(userID, subtopicID, string(difficulty))
	if err != nil {
		return nil, err
	}

	total := int64(len(questions))
	return &ProgressSummary{
		TotalQuestions: total,
		SolvedCount:    solved,
		RemainingCount: total - solved,
	}, nil
}

func (s *practiceService) History(ctx context.Context) ([]UserAnswer, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAnswersByUser(userID)
}
