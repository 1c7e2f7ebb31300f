package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotCountsResponse struct {
	Total    int64 `json:"total"`
	Occupied int64 `json:"occupied"`
	Free     int64 `json:"free"`
	Full     bool  `json:"full"`
}

func FromSlotView(view *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	resps := make([]*SlotResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromSlotView(view))
	}
	return resps
}

func FromSlotCountsView(view *queries.SlotCountsView) *SlotCountsResponse {
	return &SlotCountsResponse{
		Total:    view.Total,
		Occupied: view.Occupied,
		Free:     view.Free,
		Full:     view.IsFull(),
	}
}
