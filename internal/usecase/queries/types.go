package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SessionView struct {
	ID           uuid.UUID  `json:"id"`
	Plate        string     `json:"plate"`
	SlotLabel    string     `json:"slot_label"`
	EnteredAt    time.Time  `json:"entered_at"`
	ExitedAt     *time.Time `json:"exited_at,omitempty"`
	ChargedCents *int64     `json:"charged_cents,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotCountsView struct {
	Total    int64 `json:"total"`
	Occupied int64 `json:"occupied"`
	Free     int64 `json:"free"`
}

func (v SlotCountsView) IsFull() bool {
	return v.Free == 0
}

type VehicleView struct {
	ID          uuid.UUID `json:"id"`
	Plate       string    `json:"plate"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Color       string    `json:"color"`
	VehicleType string    `json:"vehicle_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
