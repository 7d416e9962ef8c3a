package question_test

import (
	"testing"

	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/testutil"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSubtopic(t *testing.T, tx *gorm.DB) uint {
	t.Helper()

	topicRepo := topic.NewRepository(tx)
	parent := topic.Topic{Name: "Quantitative Aptitude", Category: topic.CategoryCommon}
	require.NoError(t, topicRepo.Create(&parent))

	subRepo := subtopic.NewRepository(tx)
	st := subtopic.Subtopic{TopicID: parent.ID, Name: "Percentages"}
	require.NoError(t, subRepo.Create(&st))
	return st.ID
}

func fourOptions(correct int) []question.Option {
	options := make([]question.Option, 4)
	for i := range options {
		options[i] = question.Option{Text: "option", IsCorrect: i+1 == correct}
	}
	return options
}

func TestQuestionRepositoryCreateWithOptions(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := question.NewRepository(tx)
	subtopicID := seedSubtopic(t, tx)

	q := question.Question{
		SubtopicID: subtopicID,
		Difficulty: question.DifficultyEasy,
		Text:       "What is 10% of 250?",
		TimeLimit:  60,
	}
	require.NoError(t, repo.CreateWithOptions(&q, fourOptions(2)))

	got, err := repo.FindByID(q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Options, 4)

	correct := 0
	for _, o := range got.Options {
		if o.IsCorrect {
			correct++
		}
	}
	assert.Equal(t, 1, correct)
}

func TestQuestionRepositoryReplaceOptions(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := question.NewRepository(tx)
	subtopicID := seedSubtopic(t, tx)

	q := question.Question{
		SubtopicID: subtopicID,
		Difficulty: question.DifficultyMedium,
		Text:       "A shopkeeper marks up by 25% and discounts 10%. Net change?",
		TimeLimit:  90,
	}
	require.NoError(t, repo.CreateWithOptions(&q, fourOptions(1)))

	require.NoError(t, repo.ReplaceOptions(q.ID, fourOptions(4)))

	options, err := repo.ListOptions(q.ID)
	require.NoError(t, err)
	require.Len(t, options, 4, "old options are gone")
	assert.True(t, options[3].IsCorrect)
}

func TestQuestionRepositoryListOrdersByID(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := question.NewRepository(tx)
	subtopicID := seedSubtopic(t, tx)

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		q := question.Question{
			SubtopicID: subtopicID,
			Difficulty: question.DifficultyEasy,
			Text:       text,
			TimeLimit:  60,
		}
		require.NoError(t, repo.CreateWithOptions(&q, fourOptions(1)))
	}

	questions, err := repo.ListBySubtopic(subtopicID, question.DifficultyEasy)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, texts[i], q.Text)
	}
}
