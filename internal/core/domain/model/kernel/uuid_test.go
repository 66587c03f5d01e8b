package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, first.Validate())
	assert.Len(t, first.String(), 36)
	assert.False(t, first.IsEqual(second))
	assert.True(t, first.IsEqual(first))
}

func TestUUIDFromString(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		err   error
	}{
		{"canonical", canonicalID, nil},
		{"braced", "{" + canonicalID + "}", nil},
		{"urn prefix", "urn:uuid:" + canonicalID, nil},
		{"without hyphens", "550e8400e29b41d4a716446655440000", nil},
		{"upper case", "550E8400-E29B-41D4-A716-446655440000", nil},
		{"empty", "", errs.ErrValueIsInvalid},
		{"too short", "550e8400-e29b-41d4", errs.ErrValueIsInvalid},
		{"not hex", "zzzzzzzz-e29b-41d4-a716-446655440000", errs.ErrValueIsInvalid},
		{"path injection", "../orders", errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Equal(t, errs.ClassInvalid, errs.ClassOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, canonicalID, id.String())
		})
	}

	t.Run("nil uuid parses but is not valid", func(t *testing.T) {
		id, err := kernel.UUIDFromString(uuid.Nil.String())

		require.NoError(t, err)
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	source := uuid.MustParse(canonicalID)

	t.Run("round trips a stored column", func(t *testing.T) {
		id, err := kernel.UUIDFromBytes(source[:])

		require.NoError(t, err)
		assert.Equal(t, source, id.Bytes())
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil uuid is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(uuid.Nil[:])

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.Equal(t, errs.ClassInvalid, errs.ClassOf(zero.Validate()))
	require.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_IsEqual(t *testing.T) {
	a, err := kernel.UUIDFromString(canonicalID)
	require.NoError(t, err)
	b, err := kernel.UUIDFromString("urn:uuid:" + canonicalID)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
	assert.False(t, a.IsEqual(kernel.UUID{}))
}
