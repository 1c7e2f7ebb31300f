package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleReadStore struct {
	pool *pgxpool.Pool
}

func NewVehicleReadStore(pool *pgxpool.Pool) queries.VehicleReadStore {
	return &VehicleReadStore{pool: pool}
}

const vehicleViewColumns = `id, plate, make, model, color, vehicle_type, created_at, updated_at`

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	query := `SELECT ` + vehicleViewColumns + ` FROM vehicles WHERE id = $1`

	var view queries.VehicleView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Plate, &view.Make, &view.Model, &view.Color,
		&view.VehicleType, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return &view, nil
}

func (r *VehicleReadStore) FindByPlate(ctx context.Context, plate string) (*queries.VehicleView, error) {
	query := `SELECT ` + vehicleViewColumns + ` FROM vehicles WHERE plate = $1`

	var view queries.VehicleView
	err := r.pool.QueryRow(ctx, query, plate).Scan(
		&view.ID, &view.Plate, &view.Make, &view.Model, &view.Color,
		&view.VehicleType, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by plate", err)
	}

	return &view, nil
}

func (r *VehicleReadStore) FindAll(ctx context.Context) ([]*queries.VehicleView, error) {
	query := `SELECT ` + vehicleViewColumns + ` FROM vehicles ORDER BY plate`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	views := []*queries.VehicleView{}
	for rows.Next() {
		var view queries.VehicleView
		err := rows.Scan(
			&view.ID, &view.Plate, &view.Make, &view.Model, &view.Color,
			&view.VehicleType, &view.CreatedAt, &view.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}

	return views, nil
}
