package topic

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
)

type TopicService interface {
	Create(ctx context.Context, dto CreateTopicDTO) (*Topic, error)
	Update(ctx context.Context, id uint, dto UpdateTopicDTO) (*Topic, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Topic, error)
	ListAll(ctx context.Context) ([]Topic, error)
	Home(ctx context.Context) (*HomeResponse, error)
}

type topicService struct {
	repo TopicRepository
}

func NewService(repo TopicRepository) TopicService {
	return &topicService{repo: repo}
}

func (s *topicService) Create(ctx context.Context, dto CreateTopicDTO) (*Topic, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if !dto.Category.IsValid() {
		return nil, apperror.Validation("invalid category %q", dto.Category)
	}

	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	t := Topic{
		Name:        dto.Name,
		Category:    dto.Category,
		CreatedByID: &actorID,
	}
	if err := s.repo.Create(&t); err != nil {
		log.WithError(err).Error("Failed to create topic")
		return nil, err
	}

	log.Infof("Created topic %d with display order %d", t.ID, t.DisplayOrder)
	return &t, nil
}

func (s *topicService) Update(ctx context.Context, id uint, dto UpdateTopicDTO) (*Topic, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NotFound("topic %d not found", id)
	}

	if dto.Name != nil {
		t.Name = *dto.Name
	}
	if dto.Category != nil {
		if !dto.Category.IsValid() {
			return nil, apperror.Validation("invalid category %q", *dto.Category)
		}
		t.Category = *dto.Category
	}

	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	t.UpdatedByID = &actorID

	if err := s.repo.Update(t); err != nil {
		log.WithError(err).Error("Failed to update topic")
		return nil, err
	}
	return t, nil
}

// Delete refuses to remove a topic while subtopics still reference it.
// Curated structure is protected; only leaf content cascades.
func (s *topicService) Delete(ctx context.Context, id uint) error {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return err
	}

	t, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return apperror.NotFound("topic %d not found", id)
	}

	children, err := s.repo.CountSubtopics(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return apperror.Conflict("cannot delete topic: %d subtopics exist", children)
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete topic")
		return err
	}

	log.Infof("Deleted topic %d", id)
	return nil
}

func (s *topicService) GetByID(ctx context.Context, id uint) (*Topic, error) {
	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NotFound("topic %d not found", id)
	}
	return t, nil
}

func (s *topicService) ListAll(ctx context.Context) ([]Topic, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	return s.repo.FindAll()
}

// Home lists the three category groups for students, excluding the
// denylisted topic names at read time.
func (s *topicService) Home(ctx context.Context) (*HomeResponse, error) {
	exclude := config.TopicDenylist()

	common, err := s.repo.ListByCategory(CategoryCommon, exclude)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.ListByCategory(CategoryIT, exclude)
	if err != nil {
		return nil, err
	}
	govt, err := s.repo.ListByCategory(CategoryGovt, exclude)
	if err != nil {
		return nil, err
	}

	return &HomeResponse{
		CommonTopics: common,
		ITTopics:     it,
		GovtTopics:   govt,
	}, nil
}
