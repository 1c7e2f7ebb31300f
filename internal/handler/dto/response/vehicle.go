package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID          uuid.UUID `json:"id"`
	Plate       string    `json:"plate"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Color       string    `json:"color"`
	VehicleType string    `json:"vehicle_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	resps := make([]*VehicleResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromVehicleView(view))
	}
	return resps
}
