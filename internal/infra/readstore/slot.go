package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) queries.SlotReadStore {
	return &SlotReadStore{pool: pool}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	const query = `
		SELECT id, label, status, created_at, updated_at
		FROM slots
		WHERE id = $1`

	var view queries.SlotView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Label, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return &view, nil
}

func (r *SlotReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, label, status, created_at, updated_at
		FROM slots
		ORDER BY label`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := []*queries.SlotView{}
	for rows.Next() {
		var view queries.SlotView
		if err := rows.Scan(&view.ID, &view.Label, &view.Status, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return views, nil
}

func (r *SlotReadStore) Counts(ctx context.Context) (*queries.SlotCountsView, error) {
	const query = `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'OCCUPIED'),
		       count(*) FILTER (WHERE status = 'FREE')
		FROM slots`

	var view queries.SlotCountsView
	if err := r.pool.QueryRow(ctx, query).Scan(&view.Total, &view.Occupied, &view.Free); err != nil {
		return nil, infra.WrapRepoErr("failed to count slots", err)
	}

	return &view, nil
}
