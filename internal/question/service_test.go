package question_test

import (
	"context"
	"sort"
	"testing"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionRepo struct {
	questions    map[uint]*question.Question
	options      map[uint][]question.Option
	nextID       uint
	nextOptionID uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{
		questions: map[uint]*question.Question{},
		options:   map[uint][]question.Option{},
	}
}

func (f *fakeQuestionRepo) CreateWithOptions(q *question.Question, options []question.Option) error {
	f.nextID++
	q.ID = f.nextID
	f.questions[q.ID] = q
	f.setOptions(q.ID, options)
	return nil
}

func (f *fakeQuestionRepo) UpdateWithOptions(q *question.Question, options []question.Option) error {
	f.questions[q.ID] = q
	f.setOptions(q.ID, options)
	return nil
}

func (f *fakeQuestionRepo) ReplaceOptions(questionID uint, options []question.Option) error {
	f.setOptions(questionID, options)
	return nil
}

func (f *fakeQuestionRepo) setOptions(questionID uint, options []question.Option) {
	stored := make([]question.Option, len(options))
	for i, o := range options {
		f.nextOptionID++
		o.ID = f.nextOptionID
		o.QuestionID = questionID
		stored[i] = o
	}
	f.options[questionID] = stored
}

func (f *fakeQuestionRepo) FindByID(id uint) (*question.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	cp.Options = f.options[id]
	return &cp, nil
}

func (f *fakeQuestionRepo) FindOptionByID(id uint) (*question.Option, error) {
	for _, opts := range f.options {
		for _, o := range opts {
			if o.ID == id {
				cp := o
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) ListBySubtopic(subtopicID uint, difficulty question.Difficulty) ([]question.Question, error) {
	var out []question.Question
	for _, q := range f.questions {
		if q.SubtopicID != subtopicID {
			continue
		}
		if difficulty != question.DifficultyAll && q.Difficulty != difficulty {
			continue
		}
		cp := *q
		cp.Options = f.options[q.ID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) ListOptions(questionID uint) ([]question.Option, error) {
	return f.options[questionID], nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	delete(f.questions, id)
	delete(f.options, id)
	return nil
}

func (f *fakeQuestionRepo) CountBySubtopicAndDifficulty(subtopicID uint, difficulty string) (int64, error) {
	var n int64
	for _, q := range f.questions {
		if q.SubtopicID == subtopicID && string(q.Difficulty) == difficulty {
			n++
		}
	}
	return n, nil
}

func (f *fakeQuestionRepo) Count() (int64, error) {
	return int64(len(f.questions)), nil
}

// fakeSubtopicStore implements subtopic.SubtopicRepository for parent checks.
type fakeSubtopicStore struct {
	known map[uint]bool
}

func (f *fakeSubtopicStore) Create(*subtopic.Subtopic) error          { return nil }
func (f *fakeSubtopicStore) Update(*subtopic.Subtopic) error          { return nil }
func (f *fakeSubtopicStore) Delete(uint) error                        { return nil }
func (f *fakeSubtopicStore) CountQuestions(uint) (int64, error)       { return 0, nil }
func (f *fakeSubtopicStore) CountByTopic(uint) (int64, error)         { return 0, nil }
func (f *fakeSubtopicStore) Count() (int64, error)                    { return 0, nil }
func (f *fakeSubtopicStore) ListByTopic(uint) ([]subtopic.Subtopic, error) {
	return nil, nil
}
func (f *fakeSubtopicStore) FindByID(id uint) (*subtopic.Subtopic, error) {
	if f.known[id] {
		return &subtopic.Subtopic{ID: id, Name: "Percentages"}, nil
	}
	return nil, nil
}

func bossCtx() context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   auth.RoleBoss,
	})
}

func studentCtx() context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   auth.RoleStudent,
	})
}

func newTestService() (question.QuestionService, *fakeQuestionRepo) {
	repo := newFakeQuestionRepo()
	svc := question.NewService(repo, &fakeSubtopicStore{known: map[uint]bool{1: true}})
	return svc, repo
}

func validCreateDTO() question.CreateQuestionDTO {
	return question.CreateQuestionDTO{
		SubtopicID:   1,
		Text:         "What is 25% of 80?",
		Difficulty:   question.DifficultyEasy,
		TimeLimit:    45,
		Options:      []string{"15", "20", "25", "30"},
		CorrectIndex: 2,
	}
}

func TestCreateQuestion(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		svc, repo := newTestService()

		q, err := svc.Create(bossCtx(), validCreateDTO())
		require.NoError(t, err)
		require.Len(t, q.Options, 4)

		correct := 0
		for i, o := range q.Options {
			if o.IsCorrect {
				correct++
				assert.Equal(t, 1, i, "second option must be the correct one")
			}
		}
		assert.Equal(t, 1, correct, "exactly one option must be correct")
		assert.Len(t, repo.questions, 1)
	})

	t.Run("WrongOptionCount", func(t *testing.T) {
		svc, repo := newTestService()

		for _, options := range [][]string{
			{"a", "b", "c"},
			{"a", "b", "c", "d", "e"},
			nil,
		} {
			dto := validCreateDTO()
			dto.Options = options
			_, err := svc.Create(bossCtx(), dto)
			assert.True(t, apperror.IsValidation(err))
		}
		assert.Empty(t, repo.questions, "no partial state after failed creates")
		assert.Empty(t, repo.options)
	})

	t.Run("CorrectIndexOutOfRange", func(t *testing.T) {
		svc, _ := newTestService()

		for _, idx := range []int{0, 5, -1} {
			dto := validCreateDTO()
			dto.CorrectIndex = idx
			_, err := svc.Create(bossCtx(), dto)
			assert.True(t, apperror.IsValidation(err), "correct_index %d must be rejected", idx)
		}
	})

	t.Run("InvalidDifficulty", func(t *testing.T) {
		svc, _ := newTestService()

		dto := validCreateDTO()
		dto.Difficulty = "impossible"
		_, err := svc.Create(bossCtx(), dto)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("UnknownSubtopic", func(t *testing.T) {
		svc, _ := newTestService()

		dto := validCreateDTO()
		dto.SubtopicID = 99
		_, err := svc.Create(bossCtx(), dto)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.Create(studentCtx(), validCreateDTO())
		assert.True(t, apperror.IsPermission(err))
		assert.Empty(t, repo.questions)
	})
}

func TestReplaceOptions(t *testing.T) {
	svc, _ := newTestService()

	q, err := svc.Create(bossCtx(), validCreateDTO())
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		updated, err := svc.ReplaceOptions(bossCtx(), q.ID, question.ReplaceOptionsDTO{
			Options:      []string{"10", "16", "20", "24"},
			CorrectIndex: 3,
		})
		require.NoError(t, err)
		require.Len(t, updated.Options, 4)

		listed, err := svc.GetByID(bossCtx(), q.ID)
		require.NoError(t, err)
		require.Len(t, listed.Options, 4)
		for i, o := range listed.Options {
			assert.Equal(t, i == 2, o.IsCorrect)
		}
	})

	t.Run("WrongCount", func(t *testing.T) {
		_, err := svc.ReplaceOptions(bossCtx(), q.ID, question.ReplaceOptionsDTO{
			Options:      []string{"only", "three", "here"},
			CorrectIndex: 1,
		})
		assert.True(t, apperror.IsValidation(err))

		listed, err := svc.GetByID(bossCtx(), q.ID)
		require.NoError(t, err)
		assert.Len(t, listed.Options, 4, "failed replace must leave the old options intact")
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := svc.ReplaceOptions(bossCtx(), 404, question.ReplaceOptionsDTO{
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 1,
		})
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestListBySubtopic(t *testing.T) {
	svc, _ := newTestService()

	for _, difficulty := range []question.Difficulty{
		question.DifficultyEasy,
		question.DifficultyEasy,
		question.DifficultyHard,
	} {
		dto := validCreateDTO()
		dto.Difficulty = difficulty
		_, err := svc.Create(bossCtx(), dto)
		require.NoError(t, err)
	}

	t.Run("All", func(t *testing.T) {
		questions, err := svc.ListBySubtopic(studentCtx(), 1, question.DifficultyAll)
		require.NoError(t, err)
		assert.Len(t, questions, 3)
		assert.True(t, sort.SliceIsSorted(questions, func(i, j int) bool {
			return questions[i].ID < questions[j].ID
		}))
	})

	t.Run("Filtered", func(t *testing.T) {
		questions, err := svc.ListBySubtopic(studentCtx(), 1, question.DifficultyEasy)
		require.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	t.Run("InvalidFilter", func(t *testing.T) {
		_, err := svc.ListBySubtopic(studentCtx(), 1, "brutal")
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestDeleteQuestion(t *testing.T) {
	svc, repo := newTestService()

	q, err := svc.Create(bossCtx(), validCreateDTO())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(bossCtx(), q.ID))
	assert.Empty(t, repo.questions)
	assert.Empty(t, repo.options[q.ID])

	err = svc.Delete(bossCtx(), q.ID)
	assert.True(t, apperror.IsNotFound(err))
}
