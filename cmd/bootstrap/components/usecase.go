package components

import (
	"context"
	"log/slog"

	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/pkg/clock"
	"scan-bridge/internal/pkg/config"
	"scan-bridge/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseBrokerModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewCapabilityGate,
	NewDecodeSink,
)

var usecaseBrokerModule = fx.Module("usecase/broker",
	fx.Provide(
		fx.Annotate(
			NewBroker,
			fx.As(fx.Self()),
			fx.As(new(usecase.CaptureControl)),
			fx.As(new(usecase.ScanRequester)),
		),
		usecase.NewBridgeEndpoint,
	),
)

func NewDecodeSink(
	cfg config.Config,
	clk clock.Clock,
	ack usecase.Acknowledger,
	observer usecase.Observer,
	logger *slog.Logger,
) *usecase.DecodeSink {
	return usecase.NewDecodeSink(
		clk,
		cfg.Scanner.DecodeCooldown,
		scan.NewSymbologySet(cfg.Scanner.Symbologies),
		ack,
		observer,
		logger,
	)
}

type BrokerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Gate      *usecase.CapabilityGate
	Sink      *usecase.DecodeSink
	Surface   capture.Surface
	Ack       usecase.Acknowledger
	Journal   usecase.SettlementJournal
	Observer  usecase.Observer
	Clock     clock.Clock
	Logger    *slog.Logger
}

func NewBroker(p BrokerParams) *usecase.Broker {
	b := usecase.NewBroker(
		usecase.BrokerConfig{
			RequestTimeout:     p.Config.Scanner.RequestTimeout,
			DismissRevealDelay: p.Config.Scanner.DismissRevealDelay,
		},
		usecase.BrokerDeps{
			Gate:     p.Gate,
			Sink:     p.Sink,
			Surface:  p.Surface,
			Ack:      p.Ack,
			Journal:  p.Journal,
			Observer: p.Observer,
			Clock:    p.Clock,
			Logger:   p.Logger,
		},
	)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			b.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return b.Stop(ctx)
		},
	})
	return b
}
