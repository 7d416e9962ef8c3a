package question

type CreateQuestionDTO struct {
	SubtopicID   uint       `json:"subtopic_id" validate:"required"`
	Text         string     `json:"text" validate:"required"`
	Difficulty   Difficulty `json:"difficulty" validate:"required"`
	TimeLimit    int        `json:"time_limit"`
	Options      []string   `json:"options" validate:"required"`
	CorrectIndex int        `json:"correct_index" validate:"required"`
}

type UpdateQuestionDTO struct {
	Text         string     `json:"text" validate:"required"`
	Difficulty   Difficulty `json:"difficulty" validate:"required"`
	TimeLimit    int        `json:"time_limit"`
	Options      []string   `json:"options" validate:"required"`
	CorrectIndex int        `json:"correct_index" validate:"required"`
}

type ReplaceOptionsDTO struct {
	Options      []string `json:"options" validate:"required"`
	CorrectIndex int      `json:"correct_index" validate:"required"`
}
