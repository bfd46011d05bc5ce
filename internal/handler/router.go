package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
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
	restaurantHandler *api.RestaurantHandler,
	tableHandler *api.TableHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, restaurantHandler, tableHandler, reservationHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	restaurantHandler *api.RestaurantHandler,
	tableHandler *api.TableHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		restaurants := apiGroup.Group("/restaurants")
		{
			// Public browse surface; OptionalAuth lets operators filter to
			// their own restaurants.
			addRoutes(restaurants, []route{
				{Method: http.MethodGet, Path: "", Handler: restaurantHandler.List, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: restaurantHandler.Get},
				{Method: http.MethodGet, Path: "/:id/tables", Handler: tableHandler.ListByRestaurant},
			})

			authRequired := restaurants.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				// Review visibility is role-scoped, so the listing sits
				// behind auth like /reviews itself.
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByRestaurant},
				{Method: http.MethodPost, Path: "", Handler: restaurantHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: restaurantHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: restaurantHandler.Delete},
			})
		}

		tables := apiGroup.Group("/tables")
		{
			addRoutes(tables, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: tableHandler.Get},
			})

			authRequired := tables.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: tableHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: tableHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: tableHandler.Delete},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: reservationHandler.Transition},
				{Method: http.MethodPatch, Path: "/:id/slot", Handler: reservationHandler.Reschedule},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reviewHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: reviewHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: reviewHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
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
