package parking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed = errors.New("session is already closed")
	ErrNotActive     = errors.New("session is not active")
)

// Session is one parking episode: one vehicle in one slot, from entry to
// exit. Sessions are append-only history; a closed session is never reopened
// and never deleted.
type Session struct {
	id           uuid.UUID
	vehicleID    uuid.UUID
	slotID       uuid.UUID
	enteredAt    time.Time
	exitedAt     *time.Time
	chargedCents *Money
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewSession opens an ACTIVE session at entryTime.
func NewSession(vehicleID, slotID uuid.UUID, entryTime time.Time) *Session {
	return &Session{
		id:        uuid.New(),
		vehicleID: vehicleID,
		slotID:    slotID,
		enteredAt: entryTime,
		status:    StatusActive,
	}
}

func ReconstructSession(
	id, vehicleID, slotID uuid.UUID,
	enteredAt time.Time,
	exitedAt *time.Time,
	chargedCents *Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:           id,
		vehicleID:    vehicleID,
		slotID:       slotID,
		enteredAt:    enteredAt,
		exitedAt:     exitedAt,
		chargedCents: chargedCents,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Close transitions the session to CLOSED, setting exit time and charge
// together, exactly once.
func (s *Session) Close(exitTime time.Time, charge Money) error {
	if s.status == StatusClosed {
		return ErrAlreadyClosed
	}
	if exitTime.Before(s.enteredAt) {
		return ErrExitBeforeEntry
	}

	s.exitedAt = &exitTime
	s.chargedCents = &charge
	s.status = StatusClosed
	return nil
}

func (s *Session) IsActive() bool {
	return s.status == StatusActive
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) VehicleID() uuid.UUID { return s.vehicleID }
func (s *Session) SlotID() uuid.UUID    { return s.slotID }
func (s *Session) EnteredAt() time.Time { return s.enteredAt }
func (s *Session) ExitedAt() *time.Time { return s.exitedAt }
func (s *Session) Charged() *Money      { return s.chargedCents }
func (s *Session) Status() Status       { return s.status }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }
