package streak

import (
	"context"
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	util "github.com/Prathapkumar-67/aptitude-website/internal/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StreakService interface {
	// Touch records activity for userID on the current day. Repeat calls on
	// the same day are no-ops.
	Touch(ctx context.Context, userID uuid.UUID) error
	// Current is the streak length of the calling user: today's count, or
	// yesterday's if today has no activity yet, or zero.
	Current(ctx context.Context) (int, error)
	List(ctx context.Context) ([]UserStreak, error)
}

type streakService struct {
	repo StreakRepository
	now  func() time.Time
}

func NewService(repo StreakRepository, now func() time.Time) StreakService {
	if now == nil {
		now = time.Now
	}
	return &streakService{repo: repo, now: now}
}

func (s *streakService) Touch(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	today := util.DayOf(s.now())
	existing, err := s.repo.FindByUserAndDate(userID, today)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	count := 1
	yesterday, err := s.repo.FindByUserAndDate(userID, util.PrevDay(today))
	if err != nil {
		return err
	}
	if yesterday != nil {
		count = yesterday.StreakCount + 1
	}

	row := UserStreak{
		UserID:      userID,
		Date:        datatypes.Date(today),
		StreakCount: count,
	}
	if err := s.repo.Create(&row); err != nil {
		return err
	}

	log.Infof("Streak for user %s now %d", userID, count)
	return nil
}

func (s *streakService) Current(ctx context.Context) (int, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return 0, err
	}

	today := util.DayOf(s.now())
	row, err := s.repo.FindByUserAndDate(userID, today)
	if err != nil {
		return 0, err
	}
	if row == nil {
		row, err = s.repo.FindByUserAndDate(userID, util.PrevDay(today))
		if err != nil {
			return 0, err
		}
	}
	if row == nil {
		return 0, nil
	}
	return row.StreakCount, nil
}

func (s *streakService) List(ctx context.Context) ([]UserStreak, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(userID)
}
