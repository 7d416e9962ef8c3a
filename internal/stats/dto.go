package stats

// DashboardStats is the boss landing-page summary.
type DashboardStats struct {
	TopicCount    int64 `json:"topic_count"`
	SubtopicCount int64 `json:"subtopic_count"`
	QuestionCount int64 `json:"question_count"`
	StudentCount  int64 `json:"student_count"`
}
