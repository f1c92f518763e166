package api

import (
	"net/http"

	"hotel-desk/internal/domain/booking"
	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{roomQueries: roomQueries}
}

// @Summary Search available rooms
// @Description List rooms with no reservation overlapping the given period
// @Tags rooms
// @Produce json
// @Param arrival query string true "Arrival date (YYYY-MM-DD)"
// @Param departure query string true "Departure date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) SearchAvailableRooms(c *gin.Context) {
	var q reqdto.AvailableRoomsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Both arrival and departure dates are required",
		})
		return
	}

	period, err := q.ToPeriod()
	if err != nil {
		switch {
		case errs.Is(err, booking.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dates must use the YYYY-MM-DD format",
			})
		case errs.Is(err, booking.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Arrival date must be before departure date",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		}
		return
	}

	views, err := h.roomQueries.FindAvailable(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromRoomView(view)
	}

	c.JSON(http.StatusOK, response)
}
