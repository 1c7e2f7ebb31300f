package request

import (
	"smartpark/internal/domain/slot"
)

type CreateSlotRequest struct {
	Label string `json:"label" binding:"required,max=10"`
}

func (r CreateSlotRequest) ToDomain() (*slot.Slot, error) {
	return slot.NewSlot(r.Label)
}

type RenameSlotRequest struct {
	Label string `json:"label" binding:"required,max=10"`
}
