package subtopic

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
)

// QuestionCounter is implemented by the question repository. It is injected
// here so the overview can report per-difficulty counts without this package
// depending on the question package.
type QuestionCounter interface {
	CountBySubtopicAndDifficulty(subtopicID uint, difficulty string) (int64, error)
}

type SubtopicService interface {
	Create(ctx context.Context, dto CreateSubtopicDTO) (*Subtopic, error)
	Update(ctx context.Context, id uint, dto UpdateSubtopicDTO) (*Subtopic, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Subtopic, error)
	ListByTopic(ctx context.Context, topicID uint) ([]Subtopic, error)
	Overview(ctx context.Context, topicID uint) ([]OverviewItem, error)
}

type subtopicService struct {
	repo      SubtopicRepository
	topicRepo topic.TopicRepository
	questions QuestionCounter
}

func NewService(repo SubtopicRepository, topicRepo topic.TopicRepository, questions QuestionCounter) SubtopicService {
	return &subtopicService{
		repo:      repo,
		topicRepo: topicRepo,
		questions: questions,
	}
}

func (s *subtopicService) Create(ctx context.Context, dto CreateSubtopicDTO) (*Subtopic, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	parent, err := s.topicRepo.FindByID(dto.TopicID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("topic %d not found", dto.TopicID)
	}

	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	st := Subtopic{
		TopicID:     dto.TopicID,
		Name:        dto.Name,
		CreatedByID: &actorID,
	}
	if err := s.repo.Create(&st); err != nil {
		log.WithError(err).Error("Failed to create subtopic")
		return nil, err
	}

	log.Infof("Created subtopic %d under topic %d", st.ID, st.TopicID)
	return &st, nil
}

func (s *subtopicService) Update(ctx context.Context, id uint, dto UpdateSubtopicDTO) (*Subtopic, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	st, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperror.NotFound("subtopic %d not found", id)
	}

	if dto.Name != nil {
		st.Name = *dto.Name
	}

	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	st.UpdatedByID = &actorID

	if err := s.repo.Update(st); err != nil {
		log.WithError(err).Error("Failed to update subtopic")
		return nil, err
	}
	return st, nil
}

// Delete refuses to remove a subtopic while questions still reference it.
func (s *subtopicService) Delete(ctx context.Context, id uint) error {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return err
	}

	st, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if st == nil {
		return apperror.NotFound("subtopic %d not found", id)
	}

	questions, err := s.repo.CountQuestions(id)
	if err != nil {
		return err
	}
	if questions > 0 {
		return apperror.Conflict("cannot delete subtopic: %d questions exist", questions)
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete subtopic")
		return err
	}

	log.Infof("Deleted subtopic %d", id)
	return nil
}

func (s *subtopicService) GetByID(ctx context.Context, id uint) (*Subtopic, error) {
	st, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperror.NotFound("subtopic %d not found", id)
	}
	return st, nil
}

func (s *subtopicService) ListByTopic(ctx context.Context, topicID uint) ([]Subtopic, error) {
	parent, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("topic %d not found", topicID)
	}
	return s.repo.ListByTopic(topicID)
}

// Overview returns the curator phase view of a topic: each subtopic with its
// question counts split by difficulty.
func (s *subtopicService) Overview(ctx context.Context, topicID uint) ([]OverviewItem, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	subtopics, err := s.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	items := make([]OverviewItem, 0, len(subtopics))
	for _, st := range subtopics {
		item := OverviewItem{Subtopic: st}
		for _, pair := range []struct {
			difficulty string
			dest       *int64
		}{
			{"easy", &item.EasyCount},
			{"medium", &item.MediumCount},
			{"hard", &item.HardCount},
		} {
			count, err := s.questions.CountBySubtopicAndDifficulty(st.ID, pair.difficulty)
			if err != nil {
				return nil, err
			}
			*pair.dest = count
		}
		item.TotalCount = item.EasyCount + item.MediumCount + item.HardCount
		items = append(items, item)
	}
	return items, nil
}
