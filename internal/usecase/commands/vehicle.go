package commands

import (
	"context"
	"errors"

	"smartpark/internal/domain/vehicle"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound    = errs.New("vehicle not found")
	ErrDuplicatePlate     = errs.New("plate already registered")
	ErrVehicleHasSessions = errs.New("vehicle is referenced by parking history")
)

type VehicleCommands interface {
	Create(ctx context.Context, req reqdto.CreateVehicleRequest) (*queries.VehicleView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateVehicleRequest) (*queries.VehicleView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleCommandsImpl struct {
	uow            shared.UnitOfWork
	vehicleQueries queries.VehicleQueries
}

func NewVehicleCommands(uow shared.UnitOfWork, vehicleQueries queries.VehicleQueries) VehicleCommands {
	return &vehicleCommandsImpl{
		uow:            uow,
		vehicleQueries: vehicleQueries,
	}
}

func (v *vehicleCommandsImpl) Create(ctx context.Context, req reqdto.CreateVehicleRequest) (*queries.VehicleView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var vehicleID uuid.UUID
	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicleID, err = tx.Vehicles().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicatePlate)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return v.vehicleQueries.GetByID(ctx, vehicleID)
}

func (v *vehicleCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateVehicleRequest) (*queries.VehicleView, error) {
	view, err := v.vehicleQueries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, queries.ErrVehicleNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}

	plate, err := vehicle.NewPlate(view.Plate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	vehicleType, err := vehicle.NewType(req.VehicleType)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity := vehicle.ReconstructVehicle(
		view.ID, plate, view.Make, view.Model, view.Color,
		vehicle.Type(view.VehicleType), view.CreatedAt, view.UpdatedAt,
	)
	if err := entity.UpdateAttributes(req.Make, req.Model, req.Color, vehicleType); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vehicles().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}

	return v.vehicleQueries.GetByID(ctx, id)
}

func (v *vehicleCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Vehicles().Delete(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrVehicleNotFound)
			}
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrVehicleHasSessions)
			}
			return err
		}
		return nil
	})
}
