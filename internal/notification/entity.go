package notification

import (
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationSetting is the per-user daily reminder preference. One row per
// user.
type NotificationSetting struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ReminderTime datatypes.Time `gorm:"not null" json:"reminder_time"`
	Enabled      bool           `gorm:"not null;default:true" json:"enabled"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
