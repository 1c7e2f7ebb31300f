//go:build unit || e2e

package builder

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	id           uuid.UUID
	plate        string
	slotLabel    string
	enteredAt    time.Time
	exitedAt     *time.Time
	chargedCents *int64
	status       string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		id:        uuid.New(),
		plate:     "ABC1234",
		slotLabel: "A01",
		enteredAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		status:    "ACTIVE",
	}
}

func (b *SessionBuilder) WithID(id uuid.UUID) *SessionBuilder {
	b.id = id
	return b
}

func (b *SessionBuilder) WithPlate(plate string) *SessionBuilder {
	b.plate = plate
	return b
}

func (b *SessionBuilder) WithSlotLabel(label string) *SessionBuilder {
	b.slotLabel = label
	return b
}

func (b *SessionBuilder) WithEnteredAt(t time.Time) *SessionBuilder {
	b.enteredAt = t
	return b
}

func (b *SessionBuilder) Closed(exitedAt time.Time, chargedCents int64) *SessionBuilder {
	b.exitedAt = &exitedAt
	b.chargedCents = &chargedCents
	b.status = "CLOSED"
	return b
}

func (b *SessionBuilder) BuildView() *queries.SessionView {
	now := time.Now().UTC()
	return &queries.SessionView{
		ID:           b.id,
		Plate:        b.plate,
		SlotLabel:    b.slotLabel,
		EnteredAt:    b.enteredAt,
		ExitedAt:     b.exitedAt,
		ChargedCents: b.chargedCents,
		Status:       b.status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
