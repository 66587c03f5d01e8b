package principal_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("codes are stable", func(t *testing.T) {
		assert.Equal(t, 1, int(principal.Consumer))
		assert.Equal(t, 2, int(principal.Producer))
		assert.Equal(t, 3, int(principal.Distributor))
	})

	t.Run("string and parse round trip", func(t *testing.T) {
		for _, r := range []principal.Role{principal.Consumer, principal.Producer, principal.Distributor} {
			parsed, err := principal.ParseRole(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		assert.Equal(t, "Unknown", principal.Unknown.String())
		require.ErrorIs(t, principal.Unknown.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, principal.Role(42).Validate(), errs.ErrValueIsInvalid)

		_, err := principal.ParseRole("Admin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewPrincipal(t *testing.T) {
	t.Run("valid principal", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := principal.NewPrincipal(id, principal.Producer, true, false)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.BusinessID().IsEqual(id))
		assert.Equal(t, principal.Producer, p.Role())
		assert.True(t, p.IsAdmin())
		assert.False(t, p.IsVerified())
	})

	t.Run("joins validation errors", func(t *testing.T) {
		_, err := principal.NewPrincipal(kernel.UUID{}, principal.Unknown, false, true)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p principal.Principal

		assert.Equal(t, principal.ErrPrincipalIsNotConstructed, p.Validate())
	})
}
