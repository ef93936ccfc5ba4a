package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"scan-bridge/internal/handler/api"
	"scan-bridge/internal/handler/middleware"
	"scan-bridge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Gatherer    prometheus.Gatherer
	Bridge      *api.BridgeHandler
	Capture     *api.CaptureHandler
	Capability  *api.CapabilityHandler
	Host        *api.HostHandler
	ChannelAuth *middleware.ChannelAuth
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bridge := apiGroup.Group("/bridge")
		{
			addRoutes(bridge, []route{
				{Method: http.MethodPost, Path: "/channels", Handler: p.Bridge.OpenChannel},
			})

			channelRequired := bridge.Group("")
			channelRequired.Use(p.ChannelAuth.RequireChannel())
			addRoutes(channelRequired, []route{
				{Method: http.MethodPost, Path: "/scan", Handler: p.Bridge.RequestScan},
				{Method: http.MethodGet, Path: "/ws", Handler: p.Bridge.Socket},
			})
		}

		capture := apiGroup.Group("/capture")
		{
			addRoutes(capture, []route{
				{Method: http.MethodGet, Path: "/state", Handler: p.Capture.State},
				{Method: http.MethodGet, Path: "/history", Handler: p.Capture.History},
				{Method: http.MethodPost, Path: "/dismiss", Handler: p.Capture.Dismiss},
				{Method: http.MethodPost, Path: "/torch", Handler: p.Capture.ToggleTorch},
				{Method: http.MethodPost, Path: "/decode", Handler: p.Capture.Decode},
			})
		}

		capability := apiGroup.Group("/capability")
		{
			addRoutes(capability, []route{
				{Method: http.MethodPost, Path: "/request", Handler: p.Capability.Request},
				{Method: http.MethodPost, Path: "/decision", Handler: p.Capability.Decide},
			})
		}

		host := apiGroup.Group("/host")
		{
			addRoutes(host, []route{
				{Method: http.MethodGet, Path: "/ws", Handler: p.Host.Socket},
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
