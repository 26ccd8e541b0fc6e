package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seapass-bff/internal/handler/api"
	"seapass-bff/internal/handler/middleware"
	"seapass-bff/internal/pkg/config"
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
	listingHandler *api.ListingHandler,
	reservationHandler *api.ReservationHandler,
	confirmationHandler *api.ConfirmationHandler,
	settingsHandler *api.SettingsHandler,
	profileHandler *api.ProfileHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg, sessionMiddleware)
	setupRoutes(engine, listingHandler, reservationHandler, confirmationHandler, settingsHandler, profileHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(sessionMiddleware.Identify())
}

func setupRoutes(
	engine *gin.Engine,
	listingHandler *api.ListingHandler,
	reservationHandler *api.ReservationHandler,
	confirmationHandler *api.ConfirmationHandler,
	settingsHandler *api.SettingsHandler,
	profileHandler *api.ProfileHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.GetListing},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Submit},
				{Method: http.MethodPost, Path: "/quote", Handler: reservationHandler.Quote},
				{Method: http.MethodGet, Path: "/services", Handler: reservationHandler.ListServices},
			})
		}

		confirmation := apiGroup.Group("/confirmation")
		{
			addRoutes(confirmation, []route{
				{Method: http.MethodGet, Path: "", Handler: confirmationHandler.Last},
				{Method: http.MethodGet, Path: "/receipt", Handler: confirmationHandler.Receipt},
				{Method: http.MethodDelete, Path: "", Handler: confirmationHandler.Clear},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/settings", Handler: settingsHandler.Get},
			{Method: http.MethodPut, Path: "/settings", Handler: settingsHandler.Update},
			{Method: http.MethodGet, Path: "/profile", Handler: profileHandler.Current},
		})
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
