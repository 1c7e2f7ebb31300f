//go:build unit

package slot_test

import (
	"strings"
	"testing"

	"smartpark/internal/domain/slot"
	"smartpark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SlotBuilder)
	errIs  error
}

func TestSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "A01", actual.Label())
		assert.Equal(t, slot.StatusFree, actual.Status())
		assert.True(t, actual.IsFree())
	})

	t.Run("label validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty label",
				mutate: func(b *builder.SlotBuilder) { b.WithLabel("") },
				errIs:  slot.ErrEmptyLabel,
			},
			{
				name:   "whitespace-only label",
				mutate: func(b *builder.SlotBuilder) { b.WithLabel("   ") },
				errIs:  slot.ErrEmptyLabel,
			},
			{
				name:   "maximum length label",
				mutate: func(b *builder.SlotBuilder) { b.WithLabel(strings.Repeat("A", slot.MaxLabelLength)) },
			},
			{
				name:   "label too long",
				mutate: func(b *builder.SlotBuilder) { b.WithLabel(strings.Repeat("A", slot.MaxLabelLength+1)) },
				errIs:  slot.ErrLabelTooLong,
			},
		})
	})

	t.Run("label is trimmed and upper-cased", func(t *testing.T) {
		actual, err := slot.NewSlot("  b12 ")
		require.NoError(t, err)
		assert.Equal(t, "B12", actual.Label())
	})

	t.Run("occupy and release", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.Occupy())
		assert.Equal(t, slot.StatusOccupied, s.Status())
		assert.False(t, s.IsFree())

		require.ErrorIs(t, s.Occupy(), slot.ErrAlreadyOccupied)

		require.NoError(t, s.Release())
		assert.True(t, s.IsFree())

		require.ErrorIs(t, s.Release(), slot.ErrAlreadyFree)
	})

	t.Run("deletable only while free", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.EnsureDeletable())

		require.NoError(t, s.Occupy())
		require.ErrorIs(t, s.EnsureDeletable(), slot.ErrOccupied)
	})

	t.Run("rename normalizes the new label", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.Rename(" c03 "))
		assert.Equal(t, "C03", s.Label())

		require.ErrorIs(t, s.Rename(""), slot.ErrEmptyLabel)
		assert.Equal(t, "C03", s.Label())
	})
}

func TestSlotStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, v := range []string{"FREE", "OCCUPIED"} {
			status, err := slot.NewStatus(v)
			require.NoError(t, err)
			assert.True(t, status.IsValid())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := slot.NewStatus("RESERVED")
		require.ErrorIs(t, err, slot.ErrInvalidStatus)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSlotBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
