package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/pkg/clock"
)

// DecodeSink debounces raw decode events. After a candidate is accepted every report
// inside the cooldown window is suppressed, whatever its value: one physical code
// stays in frame for many frames.
type DecodeSink struct {
	clock       clock.Clock
	cooldown    time.Duration
	symbologies scan.SymbologySet
	ack         Acknowledger
	observer    Observer
	logger      *slog.Logger

	mu           sync.Mutex
	lastAccepted time.Time
	accepted     bool
}

func NewDecodeSink(
	clk clock.Clock,
	cooldown time.Duration,
	symbologies scan.SymbologySet,
	ack Acknowledger,
	observer Observer,
	logger *slog.Logger,
) *DecodeSink {
	if ack == nil {
		ack = noopAcknowledger{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DecodeSink{
		clock:       clk,
		cooldown:    cooldown,
		symbologies: symbologies,
		ack:         ack,
		observer:    observer,
		logger:      logger.With("component", "decode_sink"),
	}
}

// OnCandidate returns nil for suppressed or unusable reports.
func (s *DecodeSink) OnCandidate(raw scan.RawDecode) *scan.DecodeCandidate {
	if raw.Value == "" {
		s.observer.DecodeEvent(DecodeDropped)
		return nil
	}
	sym := scan.NormalizeSymbology(raw.Symbology)
	if !s.symbologies.Allows(sym) {
		s.logger.Debug("decode dropped: symbology not allowed", "symbology", sym)
		s.observer.DecodeEvent(DecodeDropped)
		return nil
	}

	now := s.clock.Now()

	s.mu.Lock()
	if s.accepted && now.Sub(s.lastAccepted) < s.cooldown {
		s.mu.Unlock()
		s.observer.DecodeEvent(DecodeSuppressed)
		return nil
	}
	s.accepted = true
	s.lastAccepted = now
	s.mu.Unlock()

	s.observer.DecodeEvent(DecodeAccepted)
	s.acknowledge(AckDecode)

	return &scan.DecodeCandidate{
		Value:      raw.Value,
		Symbology:  sym,
		ObservedAt: now,
	}
}

func (s *DecodeSink) acknowledge(cause AckCause) {
	go playAck(s.ack, s.logger, cause)
}

func playAck(ack Acknowledger, logger *slog.Logger, cause AckCause) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := ack.Acknowledge(ctx, cause); err != nil {
		logger.Warn("acknowledgment failed", "cause", cause, "error", err)
	}
}
