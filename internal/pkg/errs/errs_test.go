package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order 123 (cause: database connection failed)", err.Error())
	})

	t.Run("newlines in identifiers are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("product", "a\nb")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "a b")
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: -1 is not greater than 0)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("price")

	assert.Equal(t, "value is required: price", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("price", errors.New("missing"))
	assert.Equal(t, "value is required: price (cause: missing)", withCause.Error())
}

func TestLedgerErrors(t *testing.T) {
	t.Run("transition not possible", func(t *testing.T) {
		err := errs.NewTransitionNotPossibleError("Cancel", "Deliver")

		assert.Equal(t,
			"transition not possible: an order cannot be updated from 'Cancel' to 'Deliver'",
			err.Error())
		require.ErrorIs(t, err, errs.ErrTransitionNotPossible)
	})

	t.Run("role not authorized", func(t *testing.T) {
		err := errs.NewRoleNotAuthorizedError("Distributor", "Create", "Approve")

		assert.Equal(t, "Distributor", err.Role)
		assert.Equal(t,
			"role not authorized for this transition: a business of type 'Distributor' "+
				"is not authorized to update an order from 'Create' to 'Approve'",
			err.Error())
		require.ErrorIs(t, err, errs.ErrRoleNotAuthorized)
	})

	t.Run("role not authorized with reason", func(t *testing.T) {
		err := errs.NewRoleNotAuthorizedErrorWithReason("Consumer", "not the consumer of this order")

		assert.Equal(t, "role not authorized for this transition: not the consumer of this order", err.Error())
	})

	t.Run("history precondition", func(t *testing.T) {
		happened := errs.NewHistoryPreconditionFailedError("Approve", "Approve", false)
		missing := errs.NewHistoryPreconditionFailedError("Dispute", "Deliver", true)

		assert.Equal(t,
			"history precondition failed: an order cannot be updated to 'Approve' if event type 'Approve' has happened",
			happened.Error())
		assert.Equal(t,
			"history precondition failed: an order cannot be updated to 'Dispute' if event type 'Deliver' has not happened",
			missing.Error())
		require.ErrorIs(t, missing, errs.ErrHistoryPreconditionFailed)
	})

	t.Run("concurrent modification", func(t *testing.T) {
		err := errs.NewConcurrentModificationError("order", "42", errors.New("lock timeout"))

		assert.Equal(t, "concurrent modification: order 42 (cause: lock timeout)", err.Error())
		require.ErrorIs(t, err, errs.ErrConcurrentModification)
	})

	t.Run("integrity violation", func(t *testing.T) {
		cause := errors.New("history is empty")
		err := errs.NewIntegrityViolationError("order", "42", cause)

		assert.Equal(t, "ledger integrity violation: order 42 (cause: history is empty)", err.Error())
		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		require.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestClassOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected errs.Class
	}{
		{"nil", nil, errs.ClassInternal},
		{"unknown", errors.New("boom"), errs.ClassInternal},
		{"invalid", errs.NewValueIsInvalidError("x"), errs.ClassInvalid},
		{"required", errs.NewValueIsRequiredError("x"), errs.ClassInvalid},
		{"transition", errs.NewTransitionNotPossibleError("a", "b"), errs.ClassForbidden},
		{"role", errs.NewRoleNotAuthorizedError("r", "a", "b"), errs.ClassForbidden},
		{"history", errs.NewHistoryPreconditionFailedError("a", "b", true), errs.ClassForbidden},
		{"not found", errs.NewObjectNotFoundError("order", 1), errs.ClassNotFound},
		{"conflict", errs.NewConcurrentModificationError("order", 1, nil), errs.ClassConflict},
		{"integrity", errs.NewIntegrityViolationError("order", 1, nil), errs.ClassInternal},
		{"integrity over not found", errs.NewIntegrityViolationError("order", 1, errs.NewObjectNotFoundError("event", 1)), errs.ClassInternal},
		{"wrapped", fmt.Errorf("handle: %w", errs.NewTransitionNotPossibleError("a", "b")), errs.ClassForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.ClassOf(tc.err))
		})
	}

	assert.True(t, errs.ClassConflict.Retryable())
	assert.False(t, errs.ClassForbidden.Retryable())
	assert.Equal(t, "not_found", errs.ClassNotFound.String())
}
