package commands

import (
	"context"

	"smartpark/internal/domain/parking"
	"smartpark/internal/domain/vehicle"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDomainValidation     = errs.New("domain validation error")
	ErrVehicleAlreadyParked = errs.New("vehicle already has an active session")
	ErrNoFreeSlot           = errs.New("no free slot available")
	ErrNoActiveSession      = errs.New("no active session for plate")
)

type ParkingCommands interface {
	RegisterEntry(ctx context.Context, req reqdto.RegisterEntryRequest) (*queries.SessionView, error)
	RegisterExit(ctx context.Context, plate string) (*queries.SessionView, error)
}

type parkingCommandsImpl struct {
	uow            shared.UnitOfWork
	sessionQueries queries.SessionQueries
	tariff         parking.Tariff
	clock          clock.Clock
}

func NewParkingCommands(
	uow shared.UnitOfWork,
	sessionQueries queries.SessionQueries,
	tariff parking.Tariff,
	clock clock.Clock,
) ParkingCommands {
	return &parkingCommandsImpl{
		uow:            uow,
		sessionQueries: sessionQueries,
		tariff:         tariff,
		clock:          clock,
	}
}

// RegisterEntry admits a vehicle: it rejects plates that are already inside,
// claims the free slot with the lowest label, registers the vehicle on first
// sight and opens the session. Everything runs in one transaction, so a
// failure at any step leaves no occupied slot and no half-open session behind.
func (p *parkingCommandsImpl) RegisterEntry(ctx context.Context, req reqdto.RegisterEntryRequest) (*queries.SessionView, error) {
	v, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var sessionID uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Sessions().FindActiveByPlate(ctx, tx.DB(), v.Plate().Value())
		if err == nil {
			return errs.Mark(
				errs.Newf("vehicle %s is already parked in slot %s", active.Plate, active.SlotLabel),
				ErrVehicleAlreadyParked,
			)
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		acquired, err := tx.Slots().AcquireFree(ctx, tx.DB())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNoFreeSlot)
			}
			return err
		}
		if err := tx.Slots().Occupy(ctx, tx.DB(), acquired.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrNoFreeSlot)
			}
			return err
		}

		vehicleID, err := tx.Vehicles().FindOrCreate(ctx, tx.DB(), v)
		if err != nil {
			return err
		}

		session := parking.NewSession(vehicleID, acquired.ID(), p.clock.Now())
		sessionID, err = tx.Sessions().Create(ctx, tx.DB(), session)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrVehicleAlreadyParked)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p.sessionQueries.GetByID(ctx, sessionID)
}

// RegisterExit closes the plate's active session with the computed charge and
// frees its slot. Close and release happen in the same transaction: if the
// release fails the close rolls back, so the ledger and the slot registry
// never disagree.
func (p *parkingCommandsImpl) RegisterExit(ctx context.Context, rawPlate string) (*queries.SessionView, error) {
	plate, err := vehicle.NewPlate(rawPlate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var sessionID uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Sessions().FindActiveByPlate(ctx, tx.DB(), plate.Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNoActiveSession)
			}
			return err
		}

		exitTime := p.clock.Now()
		charge, err := p.tariff.Charge(active.EnteredAt, exitTime)
		if err != nil {
			return err
		}

		if err := tx.Sessions().Close(ctx, tx.DB(), active.ID, exitTime, charge); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrNoActiveSession)
			}
			return err
		}
		if err := tx.Slots().Release(ctx, tx.DB(), active.SlotID); err != nil {
			return err
		}

		sessionID = active.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p.sessionQueries.GetByID(ctx, sessionID)
}
