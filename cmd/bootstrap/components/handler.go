package components

import (
	"context"
	"net/http"
	"slices"

	"scan-bridge/internal/handler"
	"scan-bridge/internal/handler/api"
	"scan-bridge/internal/handler/middleware"
	"scan-bridge/internal/pkg/config"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewUpgrader,
		api.NewBridgeHandler,
		api.NewCaptureHandler,
		api.NewCapabilityHandler,
		api.NewHostHandler,
		middleware.NewChannelAuth,
	),
	fx.Invoke(handler.NewRouter),
	fx.Invoke(startStateRelay),
)

// NewUpgrader accepts handshakes without an Origin (native shell) or from an
// allowed CORS origin.
func NewUpgrader(cfg config.Config) *websocket.Upgrader {
	allowed := cfg.CORS.AllowOrigins
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
		},
	}
}

func startStateRelay(lc fx.Lifecycle, host *api.HostHandler) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return host.RelayState(ctx)
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
