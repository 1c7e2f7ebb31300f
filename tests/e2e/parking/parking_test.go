//go:build e2e

package parking_test

import (
	"net/http"
	"testing"
	"time"

	"smartpark/internal/domain/user"
	"smartpark/internal/handler/dto/response"
	"smartpark/tests/common/authtest"
	"smartpark/tests/common/builder"
	"smartpark/tests/common/dbtest"
	"smartpark/tests/common/httptest"
	"smartpark/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	entriesURL = "/api/v1/parking/entries"
	exitsURL   = "/api/v1/parking/exits/"
	activeURL  = "/api/v1/parking/active"
	historyURL = "/api/v1/parking/history"
	countsURL  = "/api/v1/slots/counts"
)

type ParkingSuite struct {
	e2e.SharedSuite
}

func (s *ParkingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestParkingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ParkingSuite))
}

func (s *ParkingSuite) operatorToken(t *testing.T) string {
	return authtest.CreateAndLogin(t, s.DB, s.Router, "operator1", string(user.RoleOperator))
}

func (s *ParkingSuite) TestEntry() {
	s.Run("Normal case: entry takes the lowest free slot and opens a session", func() {
		t := s.T()
		token := s.operatorToken(t)

		// Created out of order on purpose; allocation must still pick A01.
		dbtest.CreateTestSlot(t, s.DB, "B01")
		dbtest.CreateTestSlot(t, s.DB, "A02")
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.SessionResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "ABC1234", created.Plate)
		require.Equal(t, "A01", created.SlotLabel)
		require.Equal(t, "ACTIVE", created.Status)
		require.Nil(t, created.ExitedAt)
		require.Nil(t, created.ChargedCents)

		var counts response.SlotCountsResponse
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, countsURL, nil, token)
		require.Equal(t, http.StatusOK, cw.Code)
		httptest.DecodeResponseBody(t, cw.Body, &counts)
		require.EqualValues(t, 3, counts.Total)
		require.EqualValues(t, 1, counts.Occupied)
		require.EqualValues(t, 2, counts.Free)
		require.False(t, counts.Full)
	})

	s.Run("Error case: duplicate entry for a parked plate is rejected", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")
		dbtest.CreateTestSlot(t, s.DB, "A02")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// The second slot must still be free.
		var counts response.SlotCountsResponse
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, countsURL, nil, token)
		httptest.DecodeResponseBody(t, cw.Body, &counts)
		require.EqualValues(t, 1, counts.Occupied)
	})

	s.Run("Error case: entry into a full lot is rejected", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		first := builder.NewVehicleBuilder().WithPlate("AAA1111").BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := builder.NewVehicleBuilder().WithPlate("BBB2222").BuildCreateRequestMap()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, second, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var counts response.SlotCountsResponse
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, countsURL, nil, token)
		httptest.DecodeResponseBody(t, cw.Body, &counts)
		require.True(t, counts.Full)
	})

	s.Run("Error case: malformed plate is rejected before touching the lot", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().WithPlate("INVALID!").BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: entry requires authentication", func() {
		t := s.T()
		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ParkingSuite) TestExit() {
	s.Run("Normal case: exit within grace period is free and releases the slot", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var closed response.SessionResponse
		httptest.DecodeResponseBody(t, w.Body, &closed)
		require.Equal(t, "CLOSED", closed.Status)
		require.NotNil(t, closed.ExitedAt)
		require.NotNil(t, closed.ChargedCents)
		require.EqualValues(t, 0, *closed.ChargedCents)

		var counts response.SlotCountsResponse
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, countsURL, nil, token)
		httptest.DecodeResponseBody(t, cw.Body, &counts)
		require.EqualValues(t, 0, counts.Occupied)
	})

	s.Run("Normal case: a ninety-minute stay is billed two hours", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		dbtest.BackdateActiveSession(t, s.DB, "ABC1234", 90*time.Minute)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var closed response.SessionResponse
		httptest.DecodeResponseBody(t, w.Body, &closed)
		require.NotNil(t, closed.ChargedCents)
		require.EqualValues(t, 700, *closed.ChargedCents)
	})

	s.Run("Normal case: a long stay hits the daily rate", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		dbtest.BackdateActiveSession(t, s.DB, "ABC1234", 25*time.Hour)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var closed response.SessionResponse
		httptest.DecodeResponseBody(t, w.Body, &closed)
		require.NotNil(t, closed.ChargedCents)
		require.EqualValues(t, 3000, *closed.ChargedCents)
	})

	s.Run("Normal case: re-entry after exit reuses the freed slot", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var reopened response.SessionResponse
		httptest.DecodeResponseBody(t, w.Body, &reopened)
		require.Equal(t, "A01", reopened.SlotLabel)

		// Two sessions in the ledger now, one closed and one active.
		var history []response.SessionResponse
		hw := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)
		require.Equal(t, http.StatusOK, hw.Code)
		httptest.DecodeResponseBody(t, hw.Body, &history)
		require.Len(t, history, 2)
	})

	s.Run("Error case: exit for a plate with no active session", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ZZZ9999", nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: a freed slot keeps its session history and cannot be deleted", func() {
		t := s.T()
		token := s.operatorToken(t)
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin1", string(user.RoleAdmin))
		usedSlotID := dbtest.CreateTestSlot(t, s.DB, "A01")
		freshSlotID := dbtest.CreateTestSlot(t, s.DB, "A02")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// The slot is FREE again, but the ledger still references it.
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/v1/slots/"+usedSlotID.String(), nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/v1/slots/"+freshSlotID.String(), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Error case: exit is not repeatable", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"ABC1234", nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *ParkingSuite) TestListings() {
	s.Run("Normal case: active list shows only parked vehicles in entry order", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")
		dbtest.CreateTestSlot(t, s.DB, "A02")
		dbtest.CreateTestSlot(t, s.DB, "A03")

		for _, plate := range []string{"AAA1111", "BBB2222", "CCC3333"} {
			reqBody := builder.NewVehicleBuilder().WithPlate(plate).BuildCreateRequestMap()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, exitsURL+"BBB2222", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var active []response.SessionResponse
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, activeURL, nil, token)
		require.Equal(t, http.StatusOK, aw.Code)
		httptest.DecodeResponseBody(t, aw.Body, &active)
		require.Len(t, active, 2)
		require.Equal(t, "AAA1111", active[0].Plate)
		require.Equal(t, "CCC3333", active[1].Plate)

		var history []response.SessionResponse
		hw := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)
		require.Equal(t, http.StatusOK, hw.Code)
		httptest.DecodeResponseBody(t, hw.Body, &history)
		require.Len(t, history, 3)
	})

	s.Run("Normal case: session detail is retrievable by ID", func() {
		t := s.T()
		token := s.operatorToken(t)
		dbtest.CreateTestSlot(t, s.DB, "A01")

		reqBody := builder.NewVehicleBuilder().BuildCreateRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.SessionResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/parking/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.SessionResponse
		httptest.DecodeResponseBody(t, dw.Body, &detail)
		require.Equal(t, created.ID, detail.ID)

		expected := &response.SessionResponse{
			Plate:     "ABC1234",
			SlotLabel: "A01",
			Status:    "ACTIVE",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.SessionResponse{}, "ID", "EnteredAt", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &detail, opts...); diff != "" {
			t.Errorf("Session detail mismatch (-want +got):\n%s", diff)
		}
	})
}
