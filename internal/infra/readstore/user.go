package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) queries.UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, username, role, is_active, last_login_at, created_at
		FROM users
		WHERE id = $1`

	var view queries.UserView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Username, &view.Role, &view.IsActive, &view.LastLogin, &view.CreatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	const query = `
		SELECT id, username, role, is_active, last_login_at, created_at, password_hash
		FROM users
		WHERE username = $1`

	var (
		view         queries.UserView
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&view.ID, &view.Username, &view.Role, &view.IsActive, &view.LastLogin,
		&view.CreatedAt, &passwordHash,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return &view, passwordHash, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	const query = `
		SELECT id, username, role, is_active, last_login_at, created_at
		FROM users
		ORDER BY username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []*queries.UserView{}
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Username, &view.Role, &view.IsActive, &view.LastLogin, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return views, nil
}
