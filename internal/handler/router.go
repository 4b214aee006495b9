package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"group-booking-arbiter/internal/domain/access"
	"group-booking-arbiter/internal/handler/api"
	"group-booking-arbiter/internal/handler/middleware"
	"group-booking-arbiter/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking     *api.BookingHandler
	Config      *api.ConfigHandler
	Performance *api.PerformanceHandler
}

func NewHandlers(booking *api.BookingHandler, cfg *api.ConfigHandler, performance *api.PerformanceHandler) Handlers {
	return Handlers{Booking: booking, Config: cfg, Performance: performance}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.MerchantRateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.MerchantRateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := authMiddleware.RequireRoleAtLeast(access.RoleManager)

	apiGroup := engine.Group("/api")
	{
		merchant := apiGroup.Group("/merchants/:merchantId")
		merchant.Use(authMiddleware.RequireAuth(), authMiddleware.RequireMerchant())
		{
			addRoutes(merchant.Group("/booking-requests"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/process", Handler: h.Booking.Process, Mw: []gin.HandlerFunc{limiter.Limit()}},
				{Method: http.MethodPost, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{managerOnly}},
			})

			addRoutes(merchant, []route{
				{Method: http.MethodGet, Path: "/booking-config", Handler: h.Config.Get},
				{Method: http.MethodPatch, Path: "/booking-config", Handler: h.Config.Update, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/performance", Handler: h.Performance.Record},
				{Method: http.MethodGet, Path: "/analytics", Handler: h.Performance.Analytics},
				{Method: http.MethodGet, Path: "/capacity", Handler: h.Performance.Capacity},
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
