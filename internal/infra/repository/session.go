package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/parking"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionRepository struct{}

func NewSessionRepository() shared.SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Create(ctx context.Context, dbtx db.DBTX, s *parking.Session) (uuid.UUID, error) {
	const query = `
		INSERT INTO parking_sessions (id, vehicle_id, slot_id, entered_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		s.ID(), s.VehicleID(), s.SlotID(), s.EnteredAt(), s.Status().String(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			// Partial unique index: the vehicle or the slot already has an
			// active session.
			return uuid.Nil, infra.WrapRepoErr("active session already exists", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to open session", err)
	}

	return id, nil
}

// FindActiveByPlate locks the active session row so concurrent exits for the
// same plate serialize; the loser observes no active row and gets NotFound.
func (r *SessionRepository) FindActiveByPlate(ctx context.Context, dbtx db.DBTX, plate string) (*shared.ActiveSessionSnapshot, error) {
	const query = `
		SELECT ps.id, ps.vehicle_id, ps.slot_id, s.label, v.plate, ps.entered_at
		FROM parking_sessions ps
		JOIN vehicles v ON v.id = ps.vehicle_id
		JOIN slots s ON s.id = ps.slot_id
		WHERE v.plate = $1 AND ps.status = 'ACTIVE'
		FOR UPDATE OF ps`

	var snap shared.ActiveSessionSnapshot
	err := dbtx.QueryRow(ctx, query, plate).Scan(
		&snap.ID, &snap.VehicleID, &snap.SlotID, &snap.SlotLabel, &snap.Plate, &snap.EnteredAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active session for plate", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active session", err)
	}

	return &snap, nil
}

func (r *SessionRepository) Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, exitedAt time.Time, charge parking.Money) error {
	const query = `
		UPDATE parking_sessions
		SET exited_at = $2, charged_cents = $3, status = 'CLOSED', updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE'`

	tag, err := dbtx.Exec(ctx, query, id, exitedAt, charge.Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to close session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session is already closed", nil, infra.KindConflict)
	}

	return nil
}
