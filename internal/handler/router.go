package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-desk/internal/handler/api"
	"hotel-desk/internal/handler/middleware"
	"hotel-desk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	reservationHandler *api.ReservationHandler,
	clientHandler *api.ClientHandler,
	roomHandler *api.RoomHandler,
	hotelHandler *api.HotelHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler, clientHandler, roomHandler, hotelHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	clientHandler *api.ClientHandler,
	roomHandler *api.RoomHandler,
	hotelHandler *api.HotelHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			})
		}

		clients := apiGroup.Group("/clients")
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: clientHandler.ListClients},
				{Method: http.MethodPost, Path: "", Handler: clientHandler.RegisterClient},
				{Method: http.MethodGet, Path: "/:id", Handler: clientHandler.GetClient},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: clientHandler.ListClientReviews},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/available", Handler: roomHandler.SearchAvailableRooms},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
