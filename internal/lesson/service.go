package lesson

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
)

type LessonService interface {
	CreateVideo(ctx context.Context, dto CreateVideoLessonDTO) (*VideoLesson, error)
	UpdateVideo(ctx context.Context, id uint, dto UpdateVideoLessonDTO) (*VideoLesson, error)
	DeleteVideo(ctx context.Context, id uint) error

	CreateNote(ctx context.Context, dto CreateNoteDTO) (*Note, error)
	UpdateNote(ctx context.Context, id uint, dto UpdateNoteDTO) (*Note, error)
	DeleteNote(ctx context.Context, id uint) error

	CreateResource(ctx context.Context, dto CreateResourceDTO) (*Resource, error)
	UpdateResource(ctx context.Context, id uint, dto UpdateResourceDTO) (*Resource, error)
	DeleteResource(ctx context.Context, id uint) error

	Page(ctx context.Context, subtopicID uint) (*LessonPage, error)
}

type lessonService struct {
	repo         LessonRepository
	subtopicRepo subtopic.SubtopicRepository
}

func NewService(repo LessonRepository, subtopicRepo subtopic.SubtopicRepository) LessonService {
	return &lessonService{repo: repo, subtopicRepo: subtopicRepo}
}

func (s *lessonService) requireSubtopic(id uint) error {
	parent, err := s.subtopicRepo.FindByID(id)
	if err != nil {
		return err
	}
	if parent == nil {
		return apperror.NotFound("subtopic %d not found", id)
	}
	return nil
}

func (s *lessonService) CreateVideo(ctx context.Context, dto CreateVideoLessonDTO) (*VideoLesson, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if err := s.requireSubtopic(dto.SubtopicID); err != nil {
		return nil, err
	}
	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	v := VideoLesson{
		SubtopicID:  dto.SubtopicID,
		Title:       dto.Title,
		VideoURL:    dto.VideoURL,
		Duration:    dto.Duration,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	if err := s.repo.CreateVideo(&v); err != nil {
		log.WithError(err).Error("Failed to create video lesson")
		return nil, err
	}

	log.Infof("Created video lesson %d in subtopic %d", v.ID, v.SubtopicID)
	return &v, nil
}

func (s *lessonService) UpdateVideo(ctx context.Context, id uint, dto UpdateVideoLessonDTO) (*VideoLesson, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	v, err := s.repo.FindVideoByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperror.NotFound("video lesson %d not found", id)
	}
	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	v.Title = dto.Title
	v.VideoURL = dto.VideoURL
	v.Duration = dto.Duration
	v.UpdatedByID = &actorID
	if err := s.repo.UpdateVideo(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *lessonService) DeleteVideo(ctx context.Context, id uint) error {
	if err := auth.RequireBoss(ctx); err != nil {
		return err
	}

	v, err := s.repo.FindVideoByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return apperror.NotFound("video lesson %d not found", id)
	}
	return s.repo.DeleteVideo(id)
}

func (s *lessonService) CreateNote(ctx context.Context, dto CreateNoteDTO) (*Note, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if err := s.requireSubtopic(dto.SubtopicID); err != nil {
		return nil, err
	}
	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	n := Note{
		SubtopicID:  dto.SubtopicID,
		Heading:     dto.Heading,
		Content:     dto.Content,
		FileURL:     dto.FileURL,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	if err := s.repo.CreateNote(&n); err != nil {
		log.WithError(err).Error("Failed to create note")
		return nil, err
	}
	return &n, nil
}

func (s *lessonService) UpdateNote(ctx context.Context, id uint, dto UpdateNoteDTO) (*Note, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	n, err := s.repo.FindNoteByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperror.NotFound("note %d not found", id)
	}
	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	n.Heading = dto.Heading
	n.Content = dto.Content
	n.FileURL = dto.FileURL
	n.UpdatedByID = &actorID
	if err := s.repo.UpdateNote(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *lessonService) DeleteNote(ctx context.Context, id uint) error {
	if err := auth.RequireBoss(ctx); err != nil {
		return err
	}

	n, err := s.repo.FindNoteByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return apperror.NotFound("note %d not found", id)
	}
	return s.repo.DeleteNote(id)
}

func (s *lessonService) CreateResource(ctx context.Context, dto CreateResourceDTO) (*Resource, error) {
	log := config.WithContext(ctx)

	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}
	if err := s.requireSubtopic(dto.SubtopicID); err != nil {
		return nil, err
	}
	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	res := Resource{
		SubtopicID:  dto.SubtopicID,
		Description: dto.Description,
		Link:        dto.Link,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	if err := s.repo.CreateResource(&res); err != nil {
		log.WithError(err).Error("Failed to create resource")
		return nil, err
	}
	return &res, nil
}

func (s *lessonService) UpdateResource(ctx context.Context, id uint, dto UpdateResourceDTO) (*Resource, error) {
	if err := auth.RequireBoss(ctx); err != nil {
		return nil, err
	}

	res, err := s.repo.FindResourceByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperror.NotFound("resource %d not found", id)
	}
	actorID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	res.Description = dto.Description
	res.Link = dto.Link
	res.UpdatedByID = &actorID
	if err := s.repo.UpdateResource(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *lessonService) DeleteResource(ctx context.Context, id uint) error {
	if err := auth.RequireBoss(ctx); err != nil {
		return err
	}

	res, err := s.repo.FindResourceByID(id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.NotFound("resource %d not found", id)
	}
	return s.repo.DeleteResource(id)
}

// Page assembles the study view of a subtopic. Any authenticated user may
// read it.
func (s *lessonService) Page(ctx context.Context, subtopicID uint) (*LessonPage, error) {
	if err := s.requireSubtopic(subtopicID); err != nil {
		return nil, err
	}

	video, err := s.repo.FirstVideoBySubtopic(subtopicID)
	if err != nil {
		return nil, err
	}
	notes, err := s.repo.ListNotesBySubtopic(subtopicID)
	if err != nil {
		return nil, err
	}
	resources, err := s.repo.ListResourcesBySubtopic(subtopicID)
	if err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []Note{}
	}
	if resources == nil {
		resources = []Resource{}
	}

	return &LessonPage{
		SubtopicID: subtopicID,
		Video:      video,
		Notes:      notes,
		Resources:  resources,
	}, nil
}
