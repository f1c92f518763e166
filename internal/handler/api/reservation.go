package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationQueries  queries.ReservationQueries
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(
	reservationQueries queries.ReservationQueries,
	reservationCommands commands.ReservationCommands,
) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries:  reservationQueries,
		reservationCommands: reservationCommands,
	}
}

// @Summary List reservations
// @Description List every reservation with its client, room and hotel
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReservationView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get reservation
// @Description Get one reservation by ID
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Create reservation
// @Description Book a room for a client over a date range
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationCommands.Create(c.Request.Context(), req)
	if err != nil {
		// errs.Is, not errors.Is: ErrDomainValidation arrives as a mark on
		// the domain error, invisible to the stdlib chain walk
		switch {
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation: " + err.Error(),
			})
		case errs.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client not found",
			})
		case errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errs.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not available for the requested dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}
