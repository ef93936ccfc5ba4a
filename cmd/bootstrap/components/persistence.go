package components

import (
	"context"
	"log/slog"

	"scan-bridge/internal/infra/db"
	"scan-bridge/internal/infra/journal"
	"scan-bridge/internal/pkg/config"
	"scan-bridge/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSettlementStore,
	),
)

type SettlementStore struct {
	fx.Out

	Journal usecase.SettlementJournal
	History usecase.SettlementHistory
}

// NewSettlementStore connects the journal when JOURNAL_ENABLED is set. Otherwise
// settlements are discarded and history is empty.
func NewSettlementStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (SettlementStore, error) {
	if !cfg.Journal.Enabled {
		logger.Info("settlement journal disabled")
		noop := usecase.NoopJournal{}
		return SettlementStore{Journal: noop, History: noop}, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return SettlementStore{}, err
	}
	j := journal.NewPostgresJournal(pool, cfg.Journal.BufferSize, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := j.EnsureSchema(ctx); err != nil {
				return err
			}
			j.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer cleanup()
			return j.Stop(ctx)
		},
	})

	return SettlementStore{Journal: j, History: j}, nil
}
