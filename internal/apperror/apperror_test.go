package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("Validation", func(t *testing.T) {
		err := apperror.Validation("expected %d options, got %d", 4, 3)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Equal(t, "expected 4 options, got 3", err.Error())
	})

	t.Run("WrappedError", func(t *testing.T) {
		err := fmt.Errorf("create topic: %w", apperror.Conflict("subtopics exist"))
		assert.True(t, apperror.IsConflict(err))
		assert.False(t, apperror.IsNotFound(err))
	})

	t.Run("PlainError", func(t *testing.T) {
		err := errors.New("something else")
		assert.Equal(t, apperror.Kind(0), apperror.KindOf(err))
		assert.False(t, apperror.IsValidation(err))
	})
}
