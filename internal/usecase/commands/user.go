package commands

import (
	"context"

	"smartpark/internal/domain/user"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/pkg/password"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateUsername = errs.New("username already exists")

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
}

func NewUserCommands(uow shared.UnitOfWork, userQueries queries.UserQueries) UserCommands {
	return &userCommandsImpl{
		uow:         uow,
		userQueries: userQueries,
	}
}

func (u *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error) {
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	entity, err := req.ToDomain(hash)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var userID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err = tx.Users().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateUsername)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.userQueries.GetByID(ctx, userID)
}

func (u *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error) {
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().Update(ctx, tx.DB(), id, role, req.IsActive)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.userQueries.GetByID(ctx, id)
}

func (u *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().Delete(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return err
		}
		return nil
	})
}
