package streak

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserStreak is one practice day. StreakCount is the length of the run of
// consecutive days ending on Date, frozen when the row is written.
type UserStreak struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_streaks_user_date" json:"user_id"`
	Date        datatypes.Date `gorm:"not null;uniqueIndex:idx_user_streaks_user_date" json:"date"`
	StreakCount int            `gorm:"not null" json:"streak_count"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
