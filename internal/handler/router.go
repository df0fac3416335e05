package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/handler/api"
	"projector-reservation/internal/handler/middleware"
	"projector-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	User         *api.UserHandler
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Projector    *api.ProjectorHandler
	Report       *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.NewMetrics().Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodPut, Path: "/profile", Handler: h.User.UpdateProfile},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetAvailability},

				{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.GetUserReservations},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.CancelReservation},

				{Method: http.MethodGet, Path: "/projectors", Handler: h.Projector.ListProjectors},
			})

			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.User.ListUsers, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/reports", Handler: h.Report.GetReport, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodPost, Path: "/projectors", Handler: h.Projector.CreateProjector, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/projectors/:id", Handler: h.Projector.UpdateProjector, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/projectors/:id", Handler: h.Projector.DeleteProjector, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodPost, Path: "/admin/seed", Handler: h.Projector.SeedProjectors, Mw: []gin.HandlerFunc{adminOnly}},
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
