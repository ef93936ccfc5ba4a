package journal

import (
	"context"
	_ "embed"
	"log/slog"
	"sync"

	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/pkg/pgconv"
	"scan-bridge/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const (
	insertSettlement = `
INSERT INTO scan_settlements (id, channel_id, reason, outcome, symbology, requested_at, settled_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

	selectRecent = `
SELECT id, channel_id, reason, outcome, symbology, requested_at, settled_at
FROM scan_settlements
ORDER BY settled_at DESC
LIMIT $1`
)

// PostgresJournal appends settlements from a buffered queue on its own goroutine,
// so the broker never waits on the database.
type PostgresJournal struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	queue   chan usecase.SettlementRecord
	mu      sync.RWMutex
	closed  bool
	drained chan struct{}
}

func NewPostgresJournal(pool *pgxpool.Pool, bufferSize int, logger *slog.Logger) *PostgresJournal {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresJournal{
		pool:    pool,
		logger:  logger.With("component", "journal"),
		queue:   make(chan usecase.SettlementRecord, bufferSize),
		drained: make(chan struct{}),
	}
}

func (j *PostgresJournal) EnsureSchema(ctx context.Context) error {
	if _, err := j.pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "apply journal schema")
	}
	return nil
}

func (j *PostgresJournal) Start() {
	go j.run()
}

func (j *PostgresJournal) run() {
	defer close(j.drained)
	for rec := range j.queue {
		if err := j.Insert(context.Background(), rec); err != nil {
			j.logger.Error("journal insert failed", "request_id", rec.RequestID, "error", err)
		}
	}
}

// Append never blocks.
func (j *PostgresJournal) Append(rec usecase.SettlementRecord) error {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		return errs.ErrJournalWrite
	}
	select {
	case j.queue <- rec:
		return nil
	default:
		return errs.ErrJournalFull
	}
}

// Stop flushes queued records and waits for the writer.
func (j *PostgresJournal) Stop(ctx context.Context) error {
	j.mu.Lock()
	if !j.closed {
		j.closed = true
		close(j.queue)
	}
	j.mu.Unlock()

	select {
	case <-j.drained:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "drain journal")
	}
}

func (j *PostgresJournal) Insert(ctx context.Context, rec usecase.SettlementRecord) error {
	_, err := j.pool.Exec(ctx, insertSettlement,
		pgconv.UUIDToPgtype(rec.RequestID),
		pgconv.UUIDToPgtype(rec.ChannelID),
		rec.Reason,
		rec.Outcome.String(),
		pgconv.TextToPgtype(rec.Symbology.String()),
		pgconv.TimestamptzToPgtype(rec.RequestedAt),
		pgconv.TimestamptzToPgtype(rec.SettledAt),
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "insert settlement"), errs.ErrJournalWrite)
	}
	return nil
}

func (j *PostgresJournal) Recent(ctx context.Context, limit int) ([]usecase.SettlementRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.pool.Query(ctx, selectRecent, limit)
	if err != nil {
		return nil, errs.Wrap(err, "query settlements")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (usecase.SettlementRecord, error) {
		var (
			id, channelID          pgtype.UUID
			reason, outcome        string
			symbology              pgtype.Text
			requestedAt, settledAt pgtype.Timestamptz
		)
		if err := row.Scan(&id, &channelID, &reason, &outcome, &symbology, &requestedAt, &settledAt); err != nil {
			return usecase.SettlementRecord{}, err
		}
		return usecase.SettlementRecord{
			RequestID:   pgconv.UUIDFromPgtype(id),
			ChannelID:   pgconv.UUIDFromPgtype(channelID),
			Reason:      reason,
			Outcome:     scan.Outcome(outcome),
			Symbology:   scan.Symbology(pgconv.TextFromPgtype(symbology)),
			RequestedAt: pgconv.TimeFromPgtype(requestedAt),
			SettledAt:   pgconv.TimeFromPgtype(settledAt),
		}, nil
	})
}

var (
	_ usecase.SettlementJournal = (*PostgresJournal)(nil)
	_ usecase.SettlementHistory = (*PostgresJournal)(nil)
)
