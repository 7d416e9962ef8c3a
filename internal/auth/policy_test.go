package auth_test

import (
	"context"
	"testing"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bossContext(userID string) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.UserClaims{UserID: userID, Role: auth.RoleBoss})
}

func studentContext(userID string) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.UserClaims{UserID: userID, Role: auth.RoleStudent})
}

func TestRequireBoss(t *testing.T) {
	t.Run("Boss", func(t *testing.T) {
		assert.NoError(t, auth.RequireBoss(bossContext(uuid.NewString())))
	})

	t.Run("Student", func(t *testing.T) {
		err := auth.RequireBoss(studentContext(uuid.NewString()))
		assert.True(t, apperror.IsPermission(err))
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		err := auth.RequireBoss(context.Background())
		assert.True(t, apperror.IsPermission(err))
	})
}

func TestCurrentUserID(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		want := uuid.New()
		got, err := auth.CurrentUserID(studentContext(want.String()))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		_, err := auth.CurrentUserID(context.Background())
		assert.True(t, apperror.IsPermission(err))
	})

	t.Run("BadID", func(t *testing.T) {
		_, err := auth.CurrentUserID(studentContext("not-a-uuid"))
		assert.True(t, apperror.IsPermission(err))
	})
}
