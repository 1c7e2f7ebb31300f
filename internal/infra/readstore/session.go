package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionViewColumns = `
	ps.id, v.plate, s.label, ps.entered_at, ps.exited_at, ps.charged_cents,
	ps.status, ps.created_at, ps.updated_at`

type SessionReadStore struct {
	pool *pgxpool.Pool
}

func NewSessionReadStore(pool *pgxpool.Pool) queries.SessionReadStore {
	return &SessionReadStore{pool: pool}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	query := `
		SELECT` + sessionViewColumns + `
		FROM parking_sessions ps
		JOIN vehicles v ON v.id = ps.vehicle_id
		JOIN slots s ON s.id = ps.slot_id
		WHERE ps.id = $1`

	view, err := scanSessionView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by ID", err)
	}

	return view, nil
}

func (r *SessionReadStore) FindActive(ctx context.Context) ([]*queries.SessionView, error) {
	query := `
		SELECT` + sessionViewColumns + `
		FROM parking_sessions ps
		JOIN vehicles v ON v.id = ps.vehicle_id
		JOIN slots s ON s.id = ps.slot_id
		WHERE ps.status = 'ACTIVE'
		ORDER BY ps.entered_at`

	return r.queryViews(ctx, query)
}

func (r *SessionReadStore) FindAll(ctx context.Context) ([]*queries.SessionView, error) {
	query := `
		SELECT` + sessionViewColumns + `
		FROM parking_sessions ps
		JOIN vehicles v ON v.id = ps.vehicle_id
		JOIN slots s ON s.id = ps.slot_id
		ORDER BY ps.created_at`

	return r.queryViews(ctx, query)
}

func (r *SessionReadStore) queryViews(ctx context.Context, query string) ([]*queries.SessionView, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}
	defer rows.Close()

	views := []*queries.SessionView{}
	for rows.Next() {
		view, err := scanSessionView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan session row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate session rows", err)
	}

	return views, nil
}

func scanSessionView(row pgx.Row) (*queries.SessionView, error) {
	var view queries.SessionView
	err := row.Scan(
		&view.ID, &view.Plate, &view.SlotLabel, &view.EnteredAt, &view.ExitedAt,
		&view.ChargedCents, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
