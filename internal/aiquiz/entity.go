package aiquiz

import "github.com/Prathapkumar-67/aptitude-website/internal/question"

// DraftQuestion is a model-generated question awaiting boss review. It is
// not persisted until explicitly saved.
type DraftQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

type GenerateDraftsDTO struct {
	SubtopicID uint                `json:"subtopic_id" validate:"required"`
	Difficulty question.Difficulty `json:"difficulty" validate:"required"`
	Count      int                 `json:"count"`
	Hints      string              `json:"hints"`
}

// SaveDraftDTO persists one reviewed draft as a real question.
type SaveDraftDTO struct {
	SubtopicID uint                `json:"subtopic_id" validate:"required"`
	Difficulty question.Difficulty `json:"difficulty" validate:"required"`
	TimeLimit  int                 `json:"time_limit"`
	Draft      DraftQuestion       `json:"draft" validate:"required"`
}
