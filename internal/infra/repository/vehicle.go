package repository

import (
	"context"

	"smartpark/internal/domain/vehicle"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleRepository struct{}

func NewVehicleRepository() shared.VehicleRepository {
	return &VehicleRepository{}
}

func (r *VehicleRepository) Create(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error) {
	const query = `
		INSERT INTO vehicles (id, plate, make, model, color, vehicle_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		v.ID(), v.Plate().Value(), v.Make(), v.Model(), v.Color(), v.VehicleType().String(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("plate already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create vehicle", err)
	}

	return id, nil
}

// FindOrCreate resolves the vehicle by plate, registering it on first entry.
// The insert-then-select order keeps the operation race-free under the
// plate's unique constraint.
func (r *VehicleRepository) FindOrCreate(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error) {
	const insertQuery = `
		INSERT INTO vehicles (id, plate, make, model, color, vehicle_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (plate) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertQuery,
		v.ID(), v.Plate().Value(), v.Make(), v.Model(), v.Color(), v.VehicleType().String(),
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !db.IsNoRows(err) {
		return uuid.Nil, infra.WrapRepoErr("failed to register vehicle", err)
	}

	const selectQuery = `SELECT id FROM vehicles WHERE plate = $1`
	if err := dbtx.QueryRow(ctx, selectQuery, v.Plate().Value()).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to resolve vehicle by plate", err)
	}

	return id, nil
}

func (r *VehicleRepository) Update(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) error {
	const query = `
		UPDATE vehicles
		SET plate = $2, make = $3, model = $4, color = $5, vehicle_type = $6, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		v.ID(), v.Plate().Value(), v.Make(), v.Model(), v.Color(), v.VehicleType().String(),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("plate already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM vehicles WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("vehicle has session history", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to delete vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}

	return nil
}
