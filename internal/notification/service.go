package notification

import (
	"context"
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"gorm.io/datatypes"
)

type NotificationService interface {
	// Get returns the caller's reminder setting, or a disabled default when
	// none has been saved yet.
	Get(ctx context.Context) (*NotificationSetting, error)
	Upsert(ctx context.Context, dto UpsertSettingDTO) (*NotificationSetting, error)
}

type notificationService struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func parseReminderTime(raw string) (datatypes.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			return datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0), nil
		}
	}
	return datatypes.Time(0), apperror.Validation("invalid reminder time %q, want HH:MM or HH:MM:SS", raw)
}

func (s *notificationService) Get(ctx context.Context) (*NotificationSetting, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	setting, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &NotificationSetting{
			UserID:       userID,
			ReminderTime: datatypes.NewTime(9, 0, 0, 0),
			Enabled:      false,
		}, nil
	}
	return setting, nil
}

func (s *notificationService) Upsert(ctx context.Context, dto UpsertSettingDTO) (*NotificationSetting, error) {
	log := config.WithContext(ctx)

	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	reminder, err := parseReminderTime(dto.ReminderTime)
	if err != nil {
		return nil, err
	}

	enabled := true
	if dto.Enabled != nil {
		enabled = *dto.Enabled
	}

	setting := NotificationSetting{
		UserID:       userID,
		ReminderTime: reminder,
		Enabled:      enabled,
	}
	if err := s.repo.Upsert(&setting); err != nil {
		log.WithError(err).Error("Failed to save notification setting")
		return nil, err
	}

	log.Infof("Saved notification setting for user %s (enabled=%t)", userID, setting.Enabled)
	return &setting, nil
}
