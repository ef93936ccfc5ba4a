package components

import (
	"log/slog"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/infra/hostui"
	"scan-bridge/internal/infra/obs"
	"scan-bridge/internal/infra/platform"
	"scan-bridge/internal/infra/surface"
	"scan-bridge/internal/pkg/config"
	"scan-bridge/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewPromptPlatform,
			fx.As(fx.Self()),
			fx.As(new(usecase.CameraPlatform)),
			fx.As(new(usecase.PermissionPrompter)),
		),
		fx.Annotate(
			NewHostSurface,
			fx.As(new(capture.Surface)),
		),
		fx.Annotate(
			hostui.NewHub,
			fx.As(fx.Self()),
			fx.As(new(usecase.Acknowledger)),
		),
		NewRegistry,
		fx.Annotate(
			obs.NewMetrics,
			fx.As(new(usecase.Observer)),
		),
	),
)

func NewPromptPlatform(cfg config.Config, logger *slog.Logger) (*platform.PromptPlatform, error) {
	initial, err := capability.NewStatus(cfg.Camera.Permission)
	if err != nil {
		return nil, err
	}
	return platform.NewPromptPlatform(initial, cfg.Camera.Available, cfg.Camera.PromptTimeout, logger), nil
}

func NewHostSurface(cfg config.Config, logger *slog.Logger) *surface.HostSurface {
	return surface.NewHostSurface(cfg.Camera.Available, logger)
}

type Registry struct {
	fx.Out

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

func NewRegistry() Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return Registry{Registerer: reg, Gatherer: reg}
}
