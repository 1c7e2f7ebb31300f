package request

import (
	"smartpark/internal/domain/user"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=operator admin"`
}

func (r CreateUserRequest) ToDomain(passwordHash string) (*user.User, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, passwordHash, role), nil
}

type UpdateUserRequest struct {
	Role     string `json:"role" binding:"required,oneof=operator admin"`
	IsActive bool   `json:"is_active"`
}
