package api

import (
	"errors"
	"net/http"

	reqdto "smartpark/internal/handler/dto/request"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/handler/httperr"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParkingHandler struct {
	parkingCommands commands.ParkingCommands
	sessionQueries  queries.SessionQueries
}

func NewParkingHandler(parkingCommands commands.ParkingCommands, sessionQueries queries.SessionQueries) *ParkingHandler {
	return &ParkingHandler{
		parkingCommands: parkingCommands,
		sessionQueries:  sessionQueries,
	}
}

// @Summary Register vehicle entry
// @Description Admit a vehicle, allocate the lowest free slot and open a session
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterEntryRequest true "Entry request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /parking/entries [post]
func (h *ParkingHandler) RegisterEntry(c *gin.Context) {
	var req reqdto.RegisterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.parkingCommands.RegisterEntry(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid vehicle data", nil)
		case errors.Is(err, commands.ErrVehicleAlreadyParked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle already has an active session", nil)
		case errors.Is(err, commands.ErrNoFreeSlot):
			httperr.AbortWithError(c, http.StatusConflict, err, "Parking lot is full", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionView(view))
}

// @Summary Register vehicle exit
// @Description Close the plate's active session, compute the charge and free the slot
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Vehicle plate"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/exits/{plate} [put]
func (h *ParkingHandler) RegisterExit(c *gin.Context) {
	view, err := h.parkingCommands.RegisterExit(c.Request.Context(), c.Param("plate"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate format", nil)
		case errors.Is(err, commands.ErrNoActiveSession):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active session for plate", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary List active sessions
// @Description List sessions of vehicles currently inside, in entry order
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /parking/active [get]
func (h *ParkingHandler) ListActive(c *gin.Context) {
	views, err := h.sessionQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary List session history
// @Description List the full session ledger, active and closed
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /parking/history [get]
func (h *ParkingHandler) ListHistory(c *gin.Context) {
	views, err := h.sessionQueries.ListHistory(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary Get session
// @Description Get a session by ID
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/{id} [get]
func (h *ParkingHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return
	}

	view, err := h.sessionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSessionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}
