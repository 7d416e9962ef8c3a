package topic

type CreateTopicDTO struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Category Category `json:"category" validate:"required"`
}

type UpdateTopicDTO struct {
	Name     *string   `json:"name"`
	Category *Category `json:"category"`
}

// HomeResponse is the student landing view: topics grouped by category,
// with the configured denylist already applied.
type HomeResponse struct {
	CommonTopics []Topic `json:"common_topics"`
	ITTopics     []Topic `json:"it_topics"`
	GovtTopics   []Topic `json:"govt_topics"`
}
