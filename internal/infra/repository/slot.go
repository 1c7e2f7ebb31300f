package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/slot"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() shared.SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, dbtx db.DBTX, s *slot.Slot) (uuid.UUID, error) {
	const query = `
		INSERT INTO slots (id, label, status)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, s.ID(), s.Label(), s.Status().String()).Scan(&id); err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("slot label already in use", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}

	return id, nil
}

// AcquireFree picks the free slot with the lowest label and locks its row.
// SKIP LOCKED keeps concurrent entries from ever fighting over one slot:
// a locked candidate is simply passed over for the next free one.
func (r *SlotRepository) AcquireFree(ctx context.Context, dbtx db.DBTX) (*slot.Slot, error) {
	const query = `
		SELECT id, label, status, created_at, updated_at
		FROM slots
		WHERE status = 'FREE'
		ORDER BY label
		LIMIT 1
		FOR UPDATE SKIP LOCKED`

	s, err := scanSlot(dbtx.QueryRow(ctx, query))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no free slot available", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to acquire free slot", err)
	}

	return s, nil
}

func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*slot.Slot, error) {
	const query = `
		SELECT id, label, status, created_at, updated_at
		FROM slots
		WHERE id = $1
		FOR UPDATE`

	s, err := scanSlot(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}

	return s, nil
}

// Occupy is a guarded transition: the status predicate makes it a
// compare-and-swap, so a slot can never be occupied twice.
func (r *SlotRepository) Occupy(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE slots
		SET status = 'OCCUPIED', updated_at = now()
		WHERE id = $1 AND status = 'FREE'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to occupy slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot is not free", nil, infra.KindConflict)
	}

	return nil
}

func (r *SlotRepository) Release(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE slots
		SET status = 'FREE', updated_at = now()
		WHERE id = $1 AND status = 'OCCUPIED'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot is not occupied", nil, infra.KindConflict)
	}

	return nil
}

func (r *SlotRepository) Rename(ctx context.Context, dbtx db.DBTX, id uuid.UUID, label string) error {
	const query = `
		UPDATE slots
		SET label = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, label)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("slot label already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to rename slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM slots WHERE id = $1 AND status = 'FREE'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("slot has session history", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot is occupied or missing", nil, infra.KindConflict)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*slot.Slot, error) {
	var (
		id                   uuid.UUID
		label, status        string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &label, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	st, err := slot.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return slot.ReconstructSlot(id, label, st, createdAt, updatedAt), nil
}
