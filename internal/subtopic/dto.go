package subtopic

type CreateSubtopicDTO struct {
	TopicID uint   `json:"topic_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=100"`
}

type UpdateSubtopicDTO struct {
	Name *string `json:"name"`
}

// OverviewItem backs the curator phase view: a subtopic with its question
// counts per difficulty tier.
type OverviewItem struct {
	Subtopic    Subtopic `json:"subtopic"`
	EasyCount   int64    `json:"easy_count"`
	MediumCount int64    `json:"medium_count"`
	HardCount   int64    `json:"hard_count"`
	TotalCount  int64    `json:"total_count"`
}
