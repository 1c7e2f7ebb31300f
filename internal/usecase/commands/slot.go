package commands

import (
	"context"

	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound       = errs.New("slot not found")
	ErrDuplicateSlotLabel = errs.New("slot label already exists")
	ErrSlotOccupied       = errs.New("slot is occupied")
	ErrSlotHasHistory     = errs.New("slot is referenced by parking history")
)

type SlotCommands interface {
	Create(ctx context.Context, req reqdto.CreateSlotRequest) (*queries.SlotView, error)
	Rename(ctx context.Context, id uuid.UUID, req reqdto.RenameSlotRequest) (*queries.SlotView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type slotCommandsImpl struct {
	uow         shared.UnitOfWork
	slotQueries queries.SlotQueries
}

func NewSlotCommands(uow shared.UnitOfWork, slotQueries queries.SlotQueries) SlotCommands {
	return &slotCommandsImpl{
		uow:         uow,
		slotQueries: slotQueries,
	}
}

func (s *slotCommandsImpl) Create(ctx context.Context, req reqdto.CreateSlotRequest) (*queries.SlotView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var slotID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slotID, err = tx.Slots().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateSlotLabel)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.slotQueries.GetByID(ctx, slotID)
}

func (s *slotCommandsImpl) Rename(ctx context.Context, id uuid.UUID, req reqdto.RenameSlotRequest) (*queries.SlotView, error) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotNotFound)
			}
			return err
		}
		if err := entity.Rename(req.Label); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Slots().Rename(ctx, tx.DB(), id, entity.Label()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateSlotLabel)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.slotQueries.GetByID(ctx, id)
}

// Delete removes a slot that is FREE and has never hosted a session. Slots
// referenced by the ledger stay, since history rows must keep resolving.
func (s *slotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotNotFound)
			}
			return err
		}
		if err := entity.EnsureDeletable(); err != nil {
			return errs.Mark(err, ErrSlotOccupied)
		}
		if err := tx.Slots().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSlotHasHistory)
			}
			return err
		}
		return nil
	})
}
