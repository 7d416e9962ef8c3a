package aiquiz_test

import (
	"context"
	"testing"

	"github.com/Prathapkumar-67/aptitude-website/internal/aiquiz"
	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	drafts     []aiquiz.DraftQuestion
	lastSystem string
	lastUser   string
}

func (f *fakeProvider) SendPrompt(ctx context.Context, system, user string) ([]aiquiz.DraftQuestion, error) {
	f.lastSystem = system
	f.lastUser = user
	return f.drafts, nil
}

type fakeQuestionSvc struct {
	question.QuestionService
	created []question.CreateQuestionDTO
}

func (f *fakeQuestionSvc) Create(ctx context.Context, dto question.CreateQuestionDTO) (*question.Question, error) {
	f.created = append(f.created, dto)
	return &question.Question{ID: uint(len(f.created)), SubtopicID: dto.SubtopicID, Text: dto.Text}, nil
}

type fakeSubtopicStore struct {
	subtopic.SubtopicRepository
}

func (f *fakeSubtopicStore) FindByID(id uint) (*subtopic.Subtopic, error) {
	if id == 1 {
		return &subtopic.Subtopic{ID: 1, Name: "Profit and Loss"}, nil
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

func validDraft() aiquiz.DraftQuestion {
	return aiquiz.DraftQuestion{
		Text:         "An article sold at Rs 240 gives a 20% profit. What was the cost price?",
		Options:      []string{"Rs 180", "Rs 192", "Rs 200", "Rs 210"},
		CorrectIndex: 3,
		Explanation:  "CP = 240 / 1.2 = 200.",
	}
}

func TestGenerateDrafts(t *testing.T) {
	t.Run("KeepsValidDropsMalformed", func(t *testing.T) {
		provider := &fakeProvider{drafts: []aiquiz.DraftQuestion{
			validDraft(),
			{Text: "Only two options", Options: []string{"a", "b"}, CorrectIndex: 1},
			{Text: "Bad index", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 5},
		}}
		svc := aiquiz.NewService(provider, &fakeQuestionSvc{}, &fakeSubtopicStore{})

		drafts, err := svc.GenerateDrafts(bossCtx(), aiquiz.GenerateDraftsDTO{
			SubtopicID: 1,
			Difficulty: question.DifficultyMedium,
			Count:      3,
		})
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
		assert.Contains(t, provider.lastUser, "Profit and Loss")
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc := aiquiz.NewService(&fakeProvider{}, &fakeQuestionSvc{}, &fakeSubtopicStore{})

		_, err := svc.GenerateDrafts(studentCtx(), aiquiz.GenerateDraftsDTO{
			SubtopicID: 1,
			Difficulty: question.DifficultyEasy,
		})
		assert.True(t, apperror.IsPermission(err))
	})

	t.Run("UnknownSubtopic", func(t *testing.T) {
		svc := aiquiz.NewService(&fakeProvider{}, &fakeQuestionSvc{}, &fakeSubtopicStore{})

		_, err := svc.GenerateDrafts(bossCtx(), aiquiz.GenerateDraftsDTO{
			SubtopicID: 42,
			Difficulty: question.DifficultyEasy,
		})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("NoProviderConfigured", func(t *testing.T) {
		svc := aiquiz.NewService(nil, &fakeQuestionSvc{}, &fakeSubtopicStore{})

		_, err := svc.GenerateDrafts(bossCtx(), aiquiz.GenerateDraftsDTO{
			SubtopicID: 1,
			Difficulty: question.DifficultyEasy,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("InvalidDifficulty", func(t *testing.T) {
		svc := aiquiz.NewService(&fakeProvider{}, &fakeQuestionSvc{}, &fakeSubtopicStore{})

		_, err := svc.GenerateDrafts(bossCtx(), aiquiz.GenerateDraftsDTO{
			SubtopicID: 1,
			Difficulty: "expert",
		})
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestSaveDraft(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		questions := &fakeQuestionSvc{}
		svc := aiquiz.NewService(&fakeProvider{}, questions, &fakeSubtopicStore{})

		q, err := svc.SaveDraft(bossCtx(), aiquiz.SaveDraftDTO{
			SubtopicID: 1,
			Difficulty: question.DifficultyMedium,
			TimeLimit:  90,
			Draft:      validDraft(),
		})
		require.NoError(t, err)
		assert.NotZero(t, q.ID)
		require.Len(t, questions.created, 1)
		assert.Equal(t, 3, questions.created[0].CorrectIndex)
		assert.Equal(t, 90, questions.created[0].TimeLimit)
	})

	t.Run("MalformedDraft", func(t *testing.T) {
		questions := &fakeQuestionSvc{}
		svc := aiquiz.NewService(&fakeProvider{}, questions, &fakeSubtopicStore{})

		draft := validDraft()
		draft.Options = draft.Options[:3]
		_, err := svc.SaveDraft(bossCtx(), aiquiz.SaveDraftDTO{
			SubtopicID: 1,
			Difficulty: question.DifficultyMedium,
			Draft:      draft,
		})
		assert.True(t, apperror.IsValidation(err))
		assert.Empty(t, questions.created)
	})
}
