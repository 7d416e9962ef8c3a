package subtopic_test

import (
	"context"
	"testing"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubtopicRepo struct {
	subtopics []*subtopic.Subtopic
	questions map[uint]int64
	nextID    uint
}

func newFakeSubtopicRepo() *fakeSubtopicRepo {
	return &fakeSubtopicRepo{questions: map[uint]int64{}}
}

func (f *fakeSubtopicRepo) Create(s *subtopic.Subtopic) error {
	max := 0
	for _, existing := range f.subtopics {
		if existing.TopicID == s.TopicID && existing.DisplayOrder > max {
			max = existing.DisplayOrder
		}
	}
	f.nextID++
	s.ID = f.nextID
	s.DisplayOrder = max + 1
	f.subtopics = append(f.subtopics, s)
	return nil
}

func (f *fakeSubtopicRepo) FindByID(id uint) (*subtopic.Subtopic, error) {
	for _, s := range f.subtopics {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubtopicRepo) ListByTopic(topicID uint) ([]subtopic.Subtopic, error) {
	var out []subtopic.Subtopic
	for _, s := range f.subtopics {
		if s.TopicID == topicID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSubtopicRepo) Update(s *subtopic.Subtopic) error { return nil }

func (f *fakeSubtopicRepo) Delete(id uint) error {
	for i, s := range f.subtopics {
		if s.ID == id {
			f.subtopics = append(f.subtopics[:i], f.subtopics[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSubtopicRepo) CountQuestions(subtopicID uint) (int64, error) {
	return f.questions[subtopicID], nil
}

func (f *fakeSubtopicRepo) CountByTopic(topicID uint) (int64, error) {
	var n int64
	for _, s := range f.subtopics {
		if s.TopicID == topicID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubtopicRepo) Count() (int64, error) {
	return int64(len(f.subtopics)), nil
}

// fakeTopicStore implements just enough of topic.TopicRepository.
type fakeTopicStore struct {
	topics map[uint]*topic.Topic
}

func (f *fakeTopicStore) Create(t *topic.Topic) error        { return nil }
func (f *fakeTopicStore) Update(t *topic.Topic) error        { return nil }
func (f *fakeTopicStore) Delete(id uint) error               { return nil }
func (f *fakeTopicStore) FindAll() ([]topic.Topic, error)    { return nil, nil }
func (f *fakeTopicStore) Count() (int64, error)              { return 0, nil }
func (f *fakeTopicStore) CountSubtopics(uint) (int64, error) { return 0, nil }
func (f *fakeTopicStore) ListByCategory(topic.Category, []string) ([]topic.Topic, error) {
	return nil, nil
}
func (f *fakeTopicStore) FindByID(id uint) (*topic.Topic, error) {
	return f.topics[id], nil
}

type fakeQuestionCounter struct {
	counts map[uint]map[string]int64
}

func (f *fakeQuestionCounter) CountBySubtopicAndDifficulty(subtopicID uint, difficulty string) (int64, error) {
	return f.counts[subtopicID][difficulty], nil
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

func newTestService() (subtopic.SubtopicService, *fakeSubtopicRepo, *fakeQuestionCounter) {
	repo := newFakeSubtopicRepo()
	topics := &fakeTopicStore{topics: map[uint]*topic.Topic{
		1: {ID: 1, Name: "Arithmetic", Category: topic.CategoryCommon},
	}}
	questions := &fakeQuestionCounter{counts: map[uint]map[string]int64{}}
	return subtopic.NewService(repo, topics, questions), repo, questions
}

func TestCreateSubtopic(t *testing.T) {
	svc, _, _ := newTestService()

	t.Run("OrderScopedToTopic", func(t *testing.T) {
		first, err := svc.Create(bossCtx(), subtopic.CreateSubtopicDTO{TopicID: 1, Name: "Ratios"})
		require.NoError(t, err)
		second, err := svc.Create(bossCtx(), subtopic.CreateSubtopicDTO{TopicID: 1, Name: "Averages"})
		require.NoError(t, err)

		assert.Equal(t, 1, first.DisplayOrder)
		assert.Equal(t, 2, second.DisplayOrder)
	})

	t.Run("UnknownTopic", func(t *testing.T) {
		_, err := svc.Create(bossCtx(), subtopic.CreateSubtopicDTO{TopicID: 42, Name: "Orphan"})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		_, err := svc.Create(studentCtx(), subtopic.CreateSubtopicDTO{TopicID: 1, Name: "Nope"})
		assert.True(t, apperror.IsPermission(err))
	})
}

func TestDeleteSubtopic(t *testing.T) {
	svc, repo, _ := newTestService()

	st, err := svc.Create(bossCtx(), subtopic.CreateSubtopicDTO{TopicID: 1, Name: "Ratios"})
	require.NoError(t, err)

	t.Run("BlockedByQuestions", func(t *testing.T) {
		repo.questions[st.ID] = 3

		err := svc.Delete(bossCtx(), st.ID)
		assert.True(t, apperror.IsConflict(err))

		still, _ := repo.FindByID(st.ID)
		assert.NotNil(t, still)
	})

	t.Run("Empty", func(t *testing.T) {
		repo.questions[st.ID] = 0
		require.NoError(t, svc.Delete(bossCtx(), st.ID))
	})
}

func TestOverview(t *testing.T) {
	svc, _, questions := newTestService()

	st, err := svc.Create(bossCtx(), subtopic.CreateSubtopicDTO{TopicID: 1, Name: "Percentages"})
	require.NoError(t, err)
	questions.counts[st.ID] = map[string]int64{"easy": 5, "medium": 2, "hard": 1}

	t.Run("Boss", func(t *testing.T) {
		items, err := svc.Overview(bossCtx(), 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(5), items[0].EasyCount)
		assert.Equal(t, int64(8), items[0].TotalCount)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		_, err := svc.Overview(studentCtx(), 1)
		assert.True(t, apperror.IsPermission(err))
	})
}
