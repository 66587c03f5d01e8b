package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, pgerr.Translate(nil, "order", 1))
	})

	t.Run("record not found", func(t *testing.T) {
		err := pgerr.Translate(gorm.ErrRecordNotFound, "order", "42")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "object not found: order 42", err.Error())
	})

	for _, code := range []string{
		pgerr.SerializationFailure,
		pgerr.DeadlockDetected,
		pgerr.LockNotAvailable,
		pgerr.UniqueViolation,
	} {
		t.Run("conflict "+code, func(t *testing.T) {
			cause := fmt.Errorf("insert: %w", &pgconn.PgError{Code: code, Message: "boom"})

			err := pgerr.Translate(cause, "order", "42")

			require.ErrorIs(t, err, errs.ErrConcurrentModification)
			assert.True(t, errs.ClassOf(err).Retryable())
		})
	}

	t.Run("other postgres errors pass through", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}

		err := pgerr.Translate(cause, "order", "42")

		assert.Same(t, cause, err)
		assert.False(t, pgerr.IsConflict(err))
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		cause := errors.New("connection reset")

		assert.Equal(t, cause, pgerr.Translate(cause, "order", "42"))
	})
}
