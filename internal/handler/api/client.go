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

type ClientHandler struct {
	clientQueries  queries.ClientQueries
	clientCommands commands.ClientCommands
}

func NewClientHandler(
	clientQueries queries.ClientQueries,
	clientCommands commands.ClientCommands,
) *ClientHandler {
	return &ClientHandler{
		clientQueries:  clientQueries,
		clientCommands: clientCommands,
	}
}

// @Summary List clients
// @Description List every registered client
// @Tags clients
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Failure 500 {object} map[string]string
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	views, err := h.clientQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ClientResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromClientView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get client
// @Description Get one client by ID
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID format",
		})
		return
	}

	view, err := h.clientQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary Register client
// @Description Register a new client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Client registration request"
// @Success 201 {object} resdto.RegisterClientResponse
// @Failure 400 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.clientCommands.Register(c.Request.Context(), req)
	if err != nil {
		// the validation sentinel is a mark, so match with errs.Is
		switch {
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid client: " + err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterClientResult(result))
}

// @Summary List client reviews
// @Description List every review written by one client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{id}/reviews [get]
func (h *ClientHandler) ListClientReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID format",
		})
		return
	}

	views, err := h.clientQueries.ListReviews(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.ReviewResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReviewView(view)
	}

	c.JSON(http.StatusOK, response)
}
