package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SessionResponse struct {
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

func FromSessionView(view *queries.SessionView) *SessionResponse {
	var resp SessionResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSessionViews(views []*queries.SessionView) []*SessionResponse {
	resps := make([]*SessionResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromSessionView(view))
	}
	return resps
}
