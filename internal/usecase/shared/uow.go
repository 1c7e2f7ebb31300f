package shared

import (
	"context"
	"time"

	"smartpark/internal/domain/parking"
	"smartpark/internal/domain/slot"
	"smartpark/internal/domain/user"
	"smartpark/internal/domain/vehicle"
	"smartpark/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	Vehicles() VehicleRepository
	Sessions() SessionRepository
	Users() UserRepository
	DB() db.DBTX
}

// SlotRepository is the write side of the slot registry. Occupy and Release
// are guarded compare-and-swap updates: they fail with KindConflict when the
// slot is not in the expected state, so concurrent transitions cannot both
// win.
type SlotRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *slot.Slot) (uuid.UUID, error)
	// AcquireFree locks and returns the free slot with the lowest label.
	// Fails with KindNotFound when every slot is occupied.
	AcquireFree(ctx context.Context, dbtx db.DBTX) (*slot.Slot, error)
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*slot.Slot, error)
	Occupy(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	Release(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	Rename(ctx context.Context, dbtx db.DBTX, id uuid.UUID, label string) error
	// Delete removes a FREE slot; fails with KindConflict when occupied.
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type VehicleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error)
	// FindOrCreate resolves the vehicle by plate, inserting it on first entry.
	FindOrCreate(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) error
	// Delete fails with KindConflict while the vehicle has session history
	// that restricts removal.
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

// SessionRepository is the write side of the session ledger. The underlying
// table carries partial unique indexes guaranteeing at most one ACTIVE
// session per vehicle and per slot; Create surfaces violations as
// KindConflict.
type SessionRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *parking.Session) (uuid.UUID, error)
	// FindActiveByPlate locks and returns the active session for the plate,
	// or KindNotFound.
	FindActiveByPlate(ctx context.Context, dbtx db.DBTX, plate string) (*ActiveSessionSnapshot, error)
	// Close sets exit time and charge and flips the status, exactly once;
	// KindConflict when the session is already closed. Sessions are never
	// deleted; the ledger is append-only history.
	Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, exitedAt time.Time, charge parking.Money) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	// Update changes the mutable account fields; username and password are
	// fixed at creation.
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, role user.Role, isActive bool) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
