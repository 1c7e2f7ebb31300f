//go:build unit

package user_test

import (
	"strings"
	"testing"

	"smartpark/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("new user is active", func(t *testing.T) {
		username, err := user.NewUsername("operator1")
		require.NoError(t, err)
		role, err := user.NewRole("operator")
		require.NoError(t, err)

		u := user.NewUser(username, "hashed", role)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "operator1", u.Username().Value())
		assert.Equal(t, user.RoleOperator, u.Role())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin())
	})
}

func TestUsername(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "simple", input: "operator1", want: "operator1"},
		{name: "dots dashes underscores", input: "ops.team_a-1", want: "ops.team_a-1"},
		{name: "trimmed", input: "  admin  ", want: "admin"},
		{name: "minimum length", input: "abc", want: "abc"},
		{name: "maximum length", input: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "too short", input: "ab", errIs: user.ErrInvalidUsername},
		{name: "too long", input: strings.Repeat("a", 51), errIs: user.ErrInvalidUsername},
		{name: "forbidden characters", input: "ops team", errIs: user.ErrInvalidUsername},
		{name: "empty", input: "", errIs: user.ErrInvalidUsername},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			username, err := user.NewUsername(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, username.Value())
		})
	}
}

func TestPassword(t *testing.T) {
	t.Run("minimum length", func(t *testing.T) {
		p, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("too short", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, v := range []string{"operator", "admin"} {
			role, err := user.NewRole(v)
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
