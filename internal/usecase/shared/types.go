package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads

type ActiveSessionSnapshot struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	SlotID    uuid.UUID
	SlotLabel string
	Plate     string
	EnteredAt time.Time
}

type SlotSnapshot struct {
	ID     uuid.UUID
	Label  string
	Status string
}

type VehicleSnapshot struct {
	ID    uuid.UUID
	Plate string
}
