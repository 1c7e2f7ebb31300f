//go:build unit

package response_test

import (
	"testing"
	"time"

	"smartpark/internal/handler/dto/response"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every view field is populated with a non-zero value so a renamed or
// mistyped response field shows up as a zero in the copy.

func TestFromSessionView(t *testing.T) {
	exitedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	charged := int64(700)
	view := &queries.SessionView{
		ID:           uuid.New(),
		Plate:        "ABC1234",
		SlotLabel:    "A01",
		EnteredAt:    time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		ExitedAt:     &exitedAt,
		ChargedCents: &charged,
		Status:       "CLOSED",
		CreatedAt:    time.Date(2025, 6, 1, 8, 0, 1, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 1, 10, 0, 1, 0, time.UTC),
	}

	resp := response.FromSessionView(view)

	assert.Equal(t, &response.SessionResponse{
		ID:           view.ID,
		Plate:        view.Plate,
		SlotLabel:    view.SlotLabel,
		EnteredAt:    view.EnteredAt,
		ExitedAt:     view.ExitedAt,
		ChargedCents: view.ChargedCents,
		Status:       view.Status,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}, resp)
}

func TestFromSlotView(t *testing.T) {
	view := &queries.SlotView{
		ID:        uuid.New(),
		Label:     "B07",
		Status:    "OCCUPIED",
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := response.FromSlotView(view)

	assert.Equal(t, &response.SlotResponse{
		ID:        view.ID,
		Label:     view.Label,
		Status:    view.Status,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}, resp)
}

func TestFromSlotCountsView(t *testing.T) {
	resp := response.FromSlotCountsView(&queries.SlotCountsView{Total: 5, Occupied: 5, Free: 0})
	assert.Equal(t, &response.SlotCountsResponse{Total: 5, Occupied: 5, Free: 0, Full: true}, resp)

	resp = response.FromSlotCountsView(&queries.SlotCountsView{Total: 5, Occupied: 2, Free: 3})
	assert.False(t, resp.Full)
}

func TestFromVehicleView(t *testing.T) {
	view := &queries.VehicleView{
		ID:          uuid.New(),
		Plate:       "XYZ9876",
		Make:        "Honda",
		Model:       "Civic",
		Color:       "Black",
		VehicleType: "CAR",
		CreatedAt:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := response.FromVehicleView(view)

	assert.Equal(t, &response.VehicleResponse{
		ID:          view.ID,
		Plate:       view.Plate,
		Make:        view.Make,
		Model:       view.Model,
		Color:       view.Color,
		VehicleType: view.VehicleType,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}, resp)
}

func TestFromUserView(t *testing.T) {
	lastLogin := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)
	view := &queries.UserView{
		ID:        uuid.New(),
		Username:  "operator1",
		Role:      "operator",
		IsActive:  true,
		LastLogin: &lastLogin,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := response.FromUserView(view)

	assert.Equal(t, &response.UserResponse{
		ID:        view.ID,
		Username:  view.Username,
		Role:      view.Role,
		IsActive:  view.IsActive,
		LastLogin: view.LastLogin,
		CreatedAt: view.CreatedAt,
	}, resp)
}

func TestFromSessionViews(t *testing.T) {
	views := []*queries.SessionView{
		{ID: uuid.New(), Plate: "AAA1111", Status: "ACTIVE"},
		{ID: uuid.New(), Plate: "BBB2222", Status: "ACTIVE"},
	}

	resps := response.FromSessionViews(views)

	require.Len(t, resps, 2)
	assert.Equal(t, "AAA1111", resps[0].Plate)
	assert.Equal(t, "BBB2222", resps[1].Plate)

	assert.NotNil(t, response.FromSessionViews(nil))
	assert.Empty(t, response.FromSessionViews(nil))
}
