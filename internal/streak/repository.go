package streak

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StreakRepository interface {
	Create(s *UserStreak) error
	FindByUserAndDate(userID uuid.UUID, day time.Time) (*UserStreak, error)
	ListByUser(userID uuid.UUID) ([]UserStreak, error)
}

type streakRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) Create(s *UserStreak) error {
	return r.db.Create(s).Error
}

func (r *streakRepository) FindByUserAndDate(userID uuid.UUID, day time.Time) (*UserStreak, error) {
	var s UserStreak
	err := r.db.
		Where("user_id = ? AND date = ?", userID, datatypes.Date(day)).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *streakRepository) ListByUser(userID uuid.UUID) ([]UserStreak, error) {
	var streaks []UserStreak
	err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&streaks).Error
	if err != nil {
		return nil, err
	}
	return streaks, nil
}
