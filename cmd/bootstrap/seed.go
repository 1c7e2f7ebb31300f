package bootstrap

import (
	"context"
	"log/slog"

	"smartpark/internal/domain/user"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/password"
	"smartpark/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedUsers),
)

type seedAccount struct {
	username string
	password string
	role     user.Role
}

// SeedUsers creates the bootstrap accounts so a fresh deployment can log in.
// Existing accounts are left untouched.
func SeedUsers(lc fx.Lifecycle, uow shared.UnitOfWork) {
	seeds := []seedAccount{
		{username: "admin", password: "admin123", role: user.RoleAdmin},
		{username: "user", password: "user123", role: user.RoleOperator},
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, seed := range seeds {
				if err := seedUser(ctx, uow, seed); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func seedUser(ctx context.Context, uow shared.UnitOfWork, seed seedAccount) error {
	username, err := user.NewUsername(seed.username)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(seed.password)
	if err != nil {
		return err
	}

	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), user.NewUser(username, hash, seed.role))
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return err
		}
		slog.Info("seeded account", "username", seed.username, "role", seed.role.String())
		return nil
	})
}
