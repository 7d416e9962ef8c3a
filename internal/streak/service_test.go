package streak_test

import (
	"context"
	"testing"
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/streak"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStreakRepo struct {
	rows []streak.UserStreak
}

func dayKey(d time.Time) string {
	return d.Format("2006-01-02")
}

func (f *fakeStreakRepo) Create(s *streak.UserStreak) error {
	s.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *s)
	return nil
}

func (f *fakeStreakRepo) FindByUserAndDate(userID uuid.UUID, day time.Time) (*streak.UserStreak, error) {
	for _, r := range f.rows {
		if r.UserID == userID && dayKey(time.Time(r.Date)) == dayKey(day) {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStreakRepo) ListByUser(userID uuid.UUID) ([]streak.UserStreak, error) {
	var out []streak.UserStreak
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fixedClock lets the tests walk the calendar.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

func userCtx(userID uuid.UUID) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   auth.RoleStudent,
	})
}

func newTestService() (streak.StreakService, *fakeStreakRepo, *fixedClock) {
	repo := &fakeStreakRepo{}
	clock := &fixedClock{t: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)}
	return streak.NewService(repo, clock.now), repo, clock
}

func TestTouch(t *testing.T) {
	t.Run("FirstDayStartsAtOne", func(t *testing.T) {
		svc, repo, _ := newTestService()
		userID := uuid.New()

		require.NoError(t, svc.Touch(context.Background(), userID))
		require.Len(t, repo.rows, 1)
		assert.Equal(t, 1, repo.rows[0].StreakCount)
	})

	t.Run("SameDayIsIdempotent", func(t *testing.T) {
		svc, repo, _ := newTestService()
		userID := uuid.New()

		require.NoError(t, svc.Touch(context.Background(), userID))
		require.NoError(t, svc.Touch(context.Background(), userID))
		assert.Len(t, repo.rows, 1)
	})

	t.Run("ConsecutiveDaysExtend", func(t *testing.T) {
		svc, repo, clock := newTestService()
		userID := uuid.New()

		for day := 0; day < 3; day++ {
			require.NoError(t, svc.Touch(context.Background(), userID))
			clock.advanceDays(1)
		}

		require.Len(t, repo.rows, 3)
		assert.Equal(t, 3, repo.rows[2].StreakCount)
	})

	t.Run("GapResets", func(t *testing.T) {
		svc, repo, clock := newTestService()
		userID := uuid.New()

		require.NoError(t, svc.Touch(context.Background(), userID))
		clock.advanceDays(2)
		require.NoError(t, svc.Touch(context.Background(), userID))

		require.Len(t, repo.rows, 2)
		assert.Equal(t, 1, repo.rows[1].StreakCount)
	})

	t.Run("UsersAreIndependent", func(t *testing.T) {
		svc, repo, clock := newTestService()
		a, b := uuid.New(), uuid.New()

		require.NoError(t, svc.Touch(context.Background(), a))
		clock.advanceDays(1)
		require.NoError(t, svc.Touch(context.Background(), a))
		require.NoError(t, svc.Touch(context.Background(), b))

		counts := map[uuid.UUID]int{}
		for _, r := range repo.rows {
			if r.StreakCount > counts[r.UserID] {
				counts[r.UserID] = r.StreakCount
			}
		}
		assert.Equal(t, 2, counts[a])
		assert.Equal(t, 1, counts[b])
	})
}

func TestCurrent(t *testing.T) {
	svc, _, clock := newTestService()
	userID := uuid.New()
	ctx := userCtx(userID)

	count, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "no activity yet")

	require.NoError(t, svc.Touch(ctx, userID))
	count, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Next morning before any practice the run from yesterday still counts.
	clock.advanceDays(1)
	count, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Two days idle means the streak is over.
	clock.advanceDays(1)
	count, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestListScopedToUser(t *testing.T) {
	svc, _, _ := newTestService()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, svc.Touch(context.Background(), a))
	require.NoError(t, svc.Touch(context.Background(), b))

	rows, err := svc.List(userCtx(a))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a, rows[0].UserID)
}
