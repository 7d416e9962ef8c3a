package notification

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository interface {
	FindByUser(userID uuid.UUID) (*NotificationSetting, error)
	Upsert(s *NotificationSetting) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindByUser(userID uuid.UUID) (*NotificationSetting, error) {
	var s NotificationSetting
	if err := r.db.First(&s, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert writes the row keyed on user_id, so concurrent saves collapse into
// one setting per user.
func (r *notificationRepository) Upsert(s *NotificationSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"reminder_time", "enabled", "updated_at"}),
	}).Create(s).Error
}
