package queries

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.New("vehicle not found")

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindByPlate(ctx context.Context, plate string) (*VehicleView, error)
	FindAll(ctx context.Context) ([]*VehicleView, error)
}

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	GetByPlate(ctx context.Context, plate string) (*VehicleView, error)
	List(ctx context.Context) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *vehicleQueriesImpl) GetByPlate(ctx context.Context, plate string) (*VehicleView, error) {
	view, err := q.store.FindByPlate(ctx, plate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *vehicleQueriesImpl) List(ctx context.Context) ([]*VehicleView, error) {
	return q.store.FindAll(ctx)
}
