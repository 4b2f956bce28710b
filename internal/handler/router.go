package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Admin    *api.AdminHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	gatherer prometheus.Gatherer,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/sessions", Handler: h.Cart.StartSession},
		})

		shopper := apiGroup.Group("")
		shopper.Use(middleware.SessionToken(cfg.Session))
		addRoutes(shopper, []route{
			{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.GetCart},
			{Method: http.MethodPut, Path: "/cart/items/:skuId", Handler: h.Cart.SetItem},
			{Method: http.MethodDelete, Path: "/cart/items/:skuId", Handler: h.Cart.RemoveItem},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout},
			{Method: http.MethodGet, Path: "/checkout/reservations", Handler: h.Checkout.ListReservations},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/sweeps", Handler: h.Admin.TriggerSweep, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
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
