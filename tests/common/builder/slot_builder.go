//go:build unit || e2e

package builder

import (
	"time"

	"smartpark/internal/domain/slot"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	id     uuid.UUID
	label  string
	status string
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		id:     uuid.New(),
		label:  "A01",
		status: "FREE",
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *SlotBuilder) WithLabel(label string) *SlotBuilder {
	b.label = label
	return b
}

func (b *SlotBuilder) Occupied() *SlotBuilder {
	b.status = "OCCUPIED"
	return b
}

func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	return slot.NewSlot(b.label)
}

func (b *SlotBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"label": b.label,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	now := time.Now().UTC()
	return &queries.SlotView{
		ID:        b.id,
		Label:     b.label,
		Status:    b.status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
