package lesson

type CreateVideoLessonDTO struct {
	SubtopicID uint   `json:"subtopic_id" validate:"required"`
	Title      string `json:"title" validate:"required,max=200"`
	VideoURL   string `json:"video_url" validate:"required,url"`
	Duration   int    `json:"duration" validate:"required,gt=0"`
}

type UpdateVideoLessonDTO struct {
	Title    string `json:"title" validate:"required,max=200"`
	VideoURL string `json:"video_url" validate:"required,url"`
	Duration int    `json:"duration" validate:"required,gt=0"`
}

type CreateNoteDTO struct {
	SubtopicID uint    `json:"subtopic_id" validate:"required"`
	Heading    string  `json:"heading" validate:"required,max=200"`
	Content    string  `json:"content"`
	FileURL    *string `json:"file_url" validate:"omitempty,url"`
}

type UpdateNoteDTO struct {
	Heading string  `json:"heading" validate:"required,max=200"`
	Content string  `json:"content"`
	FileURL *string `json:"file_url" validate:"omitempty,url"`
}

type CreateResourceDTO struct {
	SubtopicID  uint   `json:"subtopic_id" validate:"required"`
	Description string `json:"description" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
}

type UpdateResourceDTO struct {
	Description string `json:"description" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
}

// LessonPage is the student view of a subtopic's learning material: the
// first video plus every note and resource.
type LessonPage struct {
	SubtopicID uint         `json:"subtopic_id"`
	Video      *VideoLesson `json:"video,omitempty"`
	Notes      []Note       `json:"notes"`
	Resources  []Resource   `json:"resources"`
}
