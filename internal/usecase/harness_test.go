//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/pkg/clock"
	"scan-bridge/internal/usecase"
	usecasemock "scan-bridge/tests/mock/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	epoch      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

const (
	requestTimeout = 30 * time.Second
	revealDelay    = 10 * time.Second
	cooldown       = 300 * time.Millisecond
	waitFor        = 2 * time.Second
	tick           = 5 * time.Millisecond
)

type fakeSurface struct {
	mu       sync.Mutex
	mounts   int
	unmounts int
	torch    bool
	mountErr error
}

func (f *fakeSurface) Mount() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mountErr != nil {
		return f.mountErr
	}
	f.mounts++
	return nil
}

func (f *fakeSurface) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unmounts++
}

func (f *fakeSurface) SetTorch(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.torch = on
}

func (f *fakeSurface) counts() (mounts, unmounts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mounts, f.unmounts
}

func (f *fakeSurface) torchOn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.torch
}

type recordingJournal struct {
	mu   sync.Mutex
	recs []usecase.SettlementRecord
}

func (j *recordingJournal) Append(rec usecase.SettlementRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.recs = append(j.recs, rec)
	return nil
}

func (j *recordingJournal) records() []usecase.SettlementRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]usecase.SettlementRecord(nil), j.recs...)
}

func (j *recordingJournal) outcomes() []scan.Outcome {
	var out []scan.Outcome
	for _, r := range j.records() {
		out = append(out, r.Outcome)
	}
	return out
}

type recordingAck struct {
	causes chan usecase.AckCause
}

func newRecordingAck() *recordingAck {
	return &recordingAck{causes: make(chan usecase.AckCause, 16)}
}

func (a *recordingAck) Acknowledge(_ context.Context, cause usecase.AckCause) error {
	select {
	case a.causes <- cause:
	default:
	}
	return nil
}

func (a *recordingAck) next(t *testing.T) usecase.AckCause {
	t.Helper()
	select {
	case c := <-a.causes:
		return c
	case <-time.After(waitFor):
		t.Fatal("no acknowledgment played")
		return ""
	}
}

type brokerHarness struct {
	clk      *clock.MockClock
	platform *usecasemock.MockCameraPlatform
	surface  *fakeSurface
	journal  *recordingJournal
	ack      *recordingAck
	gate     *usecase.CapabilityGate
	broker   *usecase.Broker
}

// newBrokerHarness starts a broker over a mocked platform. Expectations on the platform
// must be set by the caller before the first request.
func newBrokerHarness(t *testing.T) *brokerHarness {
	t.Helper()
	h := newUnstartedBrokerHarness(t)
	h.broker.Start()
	return h
}

// newUnstartedBrokerHarness leaves starting the loop to the test.
func newUnstartedBrokerHarness(t *testing.T) *brokerHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &brokerHarness{
		clk:      clock.NewMockClock(epoch),
		platform: usecasemock.NewMockCameraPlatform(ctrl),
		surface:  &fakeSurface{},
		journal:  &recordingJournal{},
		ack:      newRecordingAck(),
	}
	h.gate = usecase.NewCapabilityGate(h.platform, testLogger)
	sink := usecase.NewDecodeSink(h.clk, cooldown, scan.SymbologySet{}, h.ack, nil, testLogger)
	h.broker = usecase.NewBroker(
		usecase.BrokerConfig{RequestTimeout: requestTimeout, DismissRevealDelay: revealDelay},
		usecase.BrokerDeps{
			Gate:    h.gate,
			Sink:    sink,
			Surface: h.surface,
			Ack:     h.ack,
			Journal: h.journal,
			Clock:   h.clk,
			Logger:  testLogger,
		},
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), waitFor)
		defer cancel()
		_ = h.broker.Stop(ctx)
	})
	return h
}

func (h *brokerHarness) waitPhase(t *testing.T, phase capture.Phase) usecase.CaptureState {
	t.Helper()
	var st usecase.CaptureState
	require.Eventually(t, func() bool {
		var err error
		st, err = h.broker.Snapshot(context.Background())
		return err == nil && st.Phase == phase
	}, waitFor, tick, "phase never became %s", phase)
	return st
}

func (h *brokerHarness) waitOutcomes(t *testing.T, n int) []scan.Outcome {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(h.journal.records()) >= n
	}, waitFor, tick)
	return h.journal.outcomes()
}

func awaitResult(t *testing.T, ticket *usecase.Ticket) string {
	t.Helper()
	select {
	case v := <-ticket.Done():
		return v
	case <-time.After(waitFor):
		t.Fatal("request never settled")
		return ""
	}
}

func assertPending(t *testing.T, ticket *usecase.Ticket) {
	t.Helper()
	select {
	case v := <-ticket.Done():
		t.Fatalf("request settled unexpectedly with %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}

var errPlatform = errors.New("camera api unavailable")
