package api

import (
	"net/http"

	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelQueries queries.HotelQueries
}

func NewHotelHandler(hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{hotelQueries: hotelQueries}
}

// @Summary List hotels
// @Description List every hotel with the services it offers
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelResponse
// @Failure 500 {object} map[string]string
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	views, err := h.hotelQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.HotelResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromHotelView(view)
	}

	c.JSON(http.StatusOK, response)
}
