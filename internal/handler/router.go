package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dive-booking-gateway/internal/handler/api"
	"dive-booking-gateway/internal/handler/middleware"
	"dive-booking-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Proxy   *api.ProxyHandler
	Product *api.ProductHandler
	Media   *api.MediaHandler
}

type Middlewares struct {
	Logger      *middleware.Logger
	Admin       *middleware.AdminMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(mw.RateLimiter.Middleware())
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.GetAvailability},
			{Method: http.MethodPost, Path: "/price", Handler: h.Booking.GetPrice},
			{Method: http.MethodPost, Path: "/orders", Handler: h.Booking.CreateOrder},
			{Method: http.MethodGet, Path: "/person-types", Handler: h.Booking.GetPersonTypes},
			{Method: http.MethodGet, Path: "/resources", Handler: h.Booking.GetResources},
		})

		// method checks live in the handler so unknown paths get 404 not_allowed first
		klsd := apiGroup.Group("/klsd")
		klsd.Use(mw.RateLimiter.Middleware())
		addRoutes(klsd, []route{
			{Method: "ANY", Path: "/*path", Handler: h.Proxy.Forward},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Product.GetProduct},
			{Method: http.MethodGet, Path: "/media/resolve", Handler: h.Media.Resolve, Mw: []gin.HandlerFunc{mw.RateLimiter.Middleware()}},
			{Method: http.MethodGet, Path: "/debug/woocommerce-auth", Handler: h.Product.ProbeAuth, Mw: []gin.HandlerFunc{mw.Admin.RequireAdmin()}},
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
