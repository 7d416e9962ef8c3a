package practice

import "github.com/Prathapkumar-67/aptitude-website/internal/question"

type StepStatus string

const (
	StatusNoQuestions StepStatus = "no_questions"
	StatusInProgress  StepStatus = "in_progress"
	StatusCompleted   StepStatus = "completed"
)

// QuizOption is the student view of an option. Correctness stays server-side
// until the answer is submitted.
type QuizOption struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuizStep is one position in a practice run. Question and Options are set
// only while the run is in progress.
type QuizStep struct {
	Status         StepStatus         `json:"status"`
	Index          int                `json:"index"`
	TotalQuestions int64              `json:"total_questions"`
	Question       *question.Question `json:"question,omitempty"`
	Options        []QuizOption       `json:"options,omitempty"`
}

type SubmitAnswerDTO struct {
	QuestionID uint `json:"question_id" validate:"required"`
	OptionID   uint `json:"option_id" validate:"required"`
	TimeTaken  int  `json:"time_taken"`
	Index      int  `json:"index"`
}

type SubmitAnswerResponse struct {
	Answer    UserAnswer `json:"answer"`
	NextIndex int        `json:"next_index"`
}

type ProgressSummary struct {
	TotalQuestions int64 `json:"total_questions"`
	SolvedCount    int64 `json:"solved_count"`
	RemainingCount int64 `json:"remaining_count"`
}
