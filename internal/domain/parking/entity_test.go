//go:build unit

package parking_test

import (
	"testing"
	"time"

	"smartpark/internal/domain/parking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	enteredAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("new session is active", func(t *testing.T) {
		s := parking.NewSession(uuid.New(), uuid.New(), enteredAt)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.True(t, s.IsActive())
		assert.Equal(t, parking.StatusActive, s.Status())
		assert.Equal(t, enteredAt, s.EnteredAt())
		assert.Nil(t, s.ExitedAt())
		assert.Nil(t, s.Charged())
	})

	t.Run("close sets exit time and charge together", func(t *testing.T) {
		s := parking.NewSession(uuid.New(), uuid.New(), enteredAt)
		exitedAt := enteredAt.Add(2 * time.Hour)
		charge, err := parking.NewMoney(700)
		require.NoError(t, err)

		require.NoError(t, s.Close(exitedAt, charge))

		assert.False(t, s.IsActive())
		assert.Equal(t, parking.StatusClosed, s.Status())
		require.NotNil(t, s.ExitedAt())
		assert.Equal(t, exitedAt, *s.ExitedAt())
		require.NotNil(t, s.Charged())
		assert.Equal(t, int64(700), s.Charged().Cents())
	})

	t.Run("close is not repeatable", func(t *testing.T) {
		s := parking.NewSession(uuid.New(), uuid.New(), enteredAt)
		charge, _ := parking.NewMoney(500)

		require.NoError(t, s.Close(enteredAt.Add(time.Hour), charge))
		err := s.Close(enteredAt.Add(3*time.Hour), charge)

		require.ErrorIs(t, err, parking.ErrAlreadyClosed)
		assert.Equal(t, enteredAt.Add(time.Hour), *s.ExitedAt())
	})

	t.Run("close rejects exit before entry", func(t *testing.T) {
		s := parking.NewSession(uuid.New(), uuid.New(), enteredAt)
		charge, _ := parking.NewMoney(0)

		err := s.Close(enteredAt.Add(-time.Minute), charge)

		require.ErrorIs(t, err, parking.ErrExitBeforeEntry)
		assert.True(t, s.IsActive())
		assert.Nil(t, s.ExitedAt())
	})

	t.Run("zero-duration close is allowed", func(t *testing.T) {
		s := parking.NewSession(uuid.New(), uuid.New(), enteredAt)
		charge, _ := parking.NewMoney(0)

		require.NoError(t, s.Close(enteredAt, charge))
		assert.Equal(t, parking.StatusClosed, s.Status())
	})
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := parking.NewMoney(-1)
		require.ErrorIs(t, err, parking.ErrNegativeCharge)
	})

	t.Run("add", func(t *testing.T) {
		a, _ := parking.NewMoney(500)
		b, _ := parking.NewMoney(200)
		assert.Equal(t, int64(700), a.Add(b).Cents())
	})

	t.Run("zero", func(t *testing.T) {
		m, err := parking.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}
