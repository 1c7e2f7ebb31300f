//go:build unit || e2e

package builder

import (
	"time"

	"smartpark/internal/domain/user"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	id           uuid.UUID
	username     string
	passwordHash string
	role         string
	isActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:           uuid.New(),
		username:     "operator1",
		passwordHash: "hashed_password",
		role:         "operator",
		isActive:     true,
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.role = role
	return b
}

func (b *UserBuilder) Inactive() *UserBuilder {
	b.isActive = false
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(b.username)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, b.passwordHash, role), nil
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        b.id,
		Username:  b.username,
		Role:      b.role,
		IsActive:  b.isActive,
		CreatedAt: time.Now().UTC(),
	}
}
