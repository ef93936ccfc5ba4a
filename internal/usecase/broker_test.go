//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func grantedHarness(t *testing.T) *brokerHarness {
	t.Helper()
	h := newBrokerHarness(t)
	h.platform.EXPECT().QueryPermission(gomock.Any()).Return(capability.StatusGranted, nil).AnyTimes()
	return h
}

func TestBrokerDecodeSettlesWithValue(t *testing.T) {
	h := grantedHarness(t)
	channelID := uuid.New()

	ticket, err := h.broker.Submit(channelID, "Scan the shelf label")
	require.NoError(t, err)

	st := h.waitPhase(t, capture.PhaseActive)
	assert.Equal(t, ticket.RequestID, st.RequestID)
	assert.Equal(t, "Scan the shelf label", st.Reason)
	assert.Equal(t, capability.StatusGranted, st.Capability)

	h.clk.Add(time.Second)
	require.NoError(t, h.broker.Decode(context.Background(), scan.RawDecode{Value: "0123456789012", Symbology: "ean-13"}))

	assert.Equal(t, "0123456789012", awaitResult(t, ticket))

	mounts, unmounts := h.surface.counts()
	assert.Equal(t, 1, mounts)
	assert.Equal(t, 1, unmounts)
	assert.Equal(t, usecase.AckDecode, h.ack.next(t))

	outcomes := h.waitOutcomes(t, 1)
	assert.Equal(t, []scan.Outcome{scan.OutcomeDecoded}, outcomes)
	rec := h.journal.records()[0]
	assert.Equal(t, ticket.RequestID, rec.RequestID)
	assert.Equal(t, channelID, rec.ChannelID)
	assert.Equal(t, scan.SymbologyEAN13, rec.Symbology)
	assert.Equal(t, time.Second, rec.SettledAt.Sub(rec.RequestedAt))

	st = h.waitPhase(t, capture.PhaseIdle)
	assert.Equal(t, scan.OutcomeDecoded, st.LastOutcome)
	assert.Equal(t, uuid.Nil, st.RequestID)
}

func TestBrokerTimeout(t *testing.T) {
	h := grantedHarness(t)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)

	h.clk.Add(29 * time.Second)
	assertPending(t, ticket)

	h.clk.Add(time.Second)
	assert.Empty(t, awaitResult(t, ticket))
	assert.Equal(t, []scan.Outcome{scan.OutcomeTimedOut}, h.waitOutcomes(t, 1))

	// a decode after the deadline has nothing to settle
	require.NoError(t, h.broker.Decode(context.Background(), scan.RawDecode{Value: "late", Symbology: "qr"}))
	h.waitPhase(t, capture.PhaseIdle)
	assert.Len(t, h.journal.records(), 1)

	mounts, unmounts := h.surface.counts()
	assert.Equal(t, 1, mounts)
	assert.Equal(t, 1, unmounts)
	assert.Zero(t, h.clk.PendingTimers())
}

func TestBrokerDismissRevealDelay(t *testing.T) {
	h := grantedHarness(t)

	_, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	st := h.waitPhase(t, capture.PhaseActive)
	assert.False(t, st.DismissAffordanceVisible)

	h.clk.Add(revealDelay)
	require.Eventually(t, func() bool {
		st, err := h.broker.Snapshot(context.Background())
		return err == nil && st.DismissAffordanceVisible
	}, waitFor, tick)
}

func TestBrokerSupersede(t *testing.T) {
	h := grantedHarness(t)

	first, err := h.broker.Submit(uuid.New(), "first")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)

	h.clk.Add(2 * time.Second)
	second, err := h.broker.Submit(uuid.New(), "second")
	require.NoError(t, err)

	assert.Empty(t, awaitResult(t, first))

	st := h.waitPhase(t, capture.PhaseActive)
	assert.Equal(t, second.RequestID, st.RequestID)
	assert.Equal(t, "second", st.Reason)

	require.NoError(t, h.broker.Decode(context.Background(), scan.RawDecode{Value: "XYZ", Symbology: "qr"}))
	assert.Equal(t, "XYZ", awaitResult(t, second))

	assert.Equal(t, []scan.Outcome{scan.OutcomeSuperseded, scan.OutcomeDecoded}, h.waitOutcomes(t, 2))
	mounts, unmounts := h.surface.counts()
	assert.Equal(t, 2, mounts)
	assert.Equal(t, 2, unmounts)

	// the superseded request's timer must not fire into the new one
	h.clk.Add(requestTimeout)
	h.waitPhase(t, capture.PhaseIdle)
	assert.Len(t, h.journal.records(), 2)
}

func TestBrokerDismiss(t *testing.T) {
	h := grantedHarness(t)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)

	require.NoError(t, h.broker.Dismiss(context.Background()))
	assert.Empty(t, awaitResult(t, ticket))
	assert.Equal(t, usecase.AckDismiss, h.ack.next(t))
	assert.Equal(t, []scan.Outcome{scan.OutcomeDismissed}, h.waitOutcomes(t, 1))

	// nothing outstanding: no-op
	require.NoError(t, h.broker.Dismiss(context.Background()))
	assert.Len(t, h.journal.records(), 1)
}

func TestBrokerTorch(t *testing.T) {
	h := grantedHarness(t)

	on, err := h.broker.ToggleTorch(context.Background())
	require.NoError(t, err)
	assert.False(t, on, "no session, nothing to toggle")

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)

	on, err = h.broker.ToggleTorch(context.Background())
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, h.surface.torchOn())

	require.NoError(t, h.broker.Dismiss(context.Background()))
	awaitResult(t, ticket)
	assert.False(t, h.surface.torchOn(), "torch is switched off on unmount")
}

func TestBrokerDecodeOutsideActiveSessionIsDropped(t *testing.T) {
	h := newBrokerHarness(t)
	release := make(chan struct{})
	h.platform.EXPECT().QueryPermission(gomock.Any()).Return(capability.StatusUnknown, nil).AnyTimes()
	h.platform.EXPECT().RequestPermission(gomock.Any()).DoAndReturn(func(ctx context.Context) (capability.Status, error) {
		select {
		case <-release:
			return capability.StatusGranted, nil
		case <-ctx.Done():
			return capability.StatusUnknown, ctx.Err()
		}
	}).Times(1)

	require.NoError(t, h.broker.Decode(context.Background(), scan.RawDecode{Value: "idle", Symbology: "qr"}))

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseAwaitingPermission)

	require.NoError(t, h.broker.Decode(context.Background(), scan.RawDecode{Value: "early", Symbology: "qr"}))
	assertPending(t, ticket)

	close(release)
	h.waitPhase(t, capture.PhaseActive)
	require.NoError(t, h.broker.Decode(context.Background(), scan.RawDecode{Value: "ontime", Symbology: "qr"}))
	assert.Equal(t, "ontime", awaitResult(t, ticket))
}

func TestBrokerPermissionDenied(t *testing.T) {
	h := newBrokerHarness(t)
	h.platform.EXPECT().QueryPermission(gomock.Any()).Return(capability.StatusDenied, nil).Times(1)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)

	assert.Empty(t, awaitResult(t, ticket))
	assert.Equal(t, []scan.Outcome{scan.OutcomeDenied}, h.waitOutcomes(t, 1))
	mounts, _ := h.surface.counts()
	assert.Zero(t, mounts)

	st := h.waitPhase(t, capture.PhaseIdle)
	assert.Equal(t, capability.StatusDenied, st.Capability)

	// denial is sticky: the next request short-circuits without asking the platform
	next, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	assert.Empty(t, awaitResult(t, next))

	h.platform.EXPECT().RequestPermission(gomock.Any()).Return(capability.StatusGranted, nil).Times(1)
	assert.Equal(t, capability.StatusGranted, h.broker.RetryPermission(context.Background()))

	retried, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)
	require.NoError(t, h.broker.Dismiss(context.Background()))
	awaitResult(t, retried)
}

func TestBrokerSurfaceUnavailable(t *testing.T) {
	h := grantedHarness(t)
	h.surface.mountErr = errs.ErrSurfaceUnavailable

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)

	assert.Empty(t, awaitResult(t, ticket))
	assert.Equal(t, []scan.Outcome{scan.OutcomeUnavailable}, h.waitOutcomes(t, 1))
	_, unmounts := h.surface.counts()
	assert.Zero(t, unmounts)
}

func TestBrokerTimeoutWhileAwaitingPermission(t *testing.T) {
	h := newBrokerHarness(t)
	decided := make(chan struct{})
	h.platform.EXPECT().QueryPermission(gomock.Any()).Return(capability.StatusUnknown, nil).AnyTimes()
	h.platform.EXPECT().RequestPermission(gomock.Any()).DoAndReturn(func(ctx context.Context) (capability.Status, error) {
		select {
		case <-decided:
			return capability.StatusGranted, nil
		case <-ctx.Done():
			return capability.StatusUnknown, ctx.Err()
		}
	}).Times(1)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseAwaitingPermission)

	h.clk.Add(requestTimeout)
	assert.Empty(t, awaitResult(t, ticket))

	// the late answer belongs to a settled request and must not mount anything
	close(decided)
	require.Eventually(t, func() bool {
		return h.gate.Status() == capability.StatusGranted
	}, waitFor, tick)
	h.waitPhase(t, capture.PhaseIdle)
	mounts, _ := h.surface.counts()
	assert.Zero(t, mounts)
}

func TestBrokerSettlesAtMostOnce(t *testing.T) {
	h := grantedHarness(t)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		_ = h.broker.Decode(context.Background(), scan.RawDecode{Value: "RACE", Symbology: "qr"})
	}()
	go func() {
		defer wg.Done()
		_ = h.broker.Dismiss(context.Background())
	}()
	go func() {
		defer wg.Done()
		h.clk.Add(requestTimeout)
	}()
	wg.Wait()

	v := awaitResult(t, ticket)
	assert.Contains(t, []string{"", "RACE"}, v)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	require.NoError(t, h.broker.Stop(ctx))

	recs := h.journal.records()
	require.Len(t, recs, 1)
	if v == "RACE" {
		assert.Equal(t, scan.OutcomeDecoded, recs[0].Outcome)
	} else {
		assert.NotEqual(t, scan.OutcomeDecoded, recs[0].Outcome)
	}
	mounts, unmounts := h.surface.counts()
	assert.Equal(t, mounts, unmounts)
}

func TestBrokerRequestScanCancelDismisses(t *testing.T) {
	h := grantedHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan string, 1)
	go func() {
		v, err := h.broker.RequestScan(ctx, uuid.New(), "")
		assert.NoError(t, err)
		done <- v
	}()

	h.waitPhase(t, capture.PhaseActive)
	cancel()

	select {
	case v := <-done:
		assert.Empty(t, v)
	case <-time.After(waitFor):
		t.Fatal("RequestScan did not return after cancel")
	}
	assert.Equal(t, []scan.Outcome{scan.OutcomeDismissed}, h.waitOutcomes(t, 1))
	_, unmounts := h.surface.counts()
	assert.Equal(t, 1, unmounts)
}

func TestBrokerStop(t *testing.T) {
	h := grantedHarness(t)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)
	h.waitPhase(t, capture.PhaseActive)

	watch, err := h.broker.Watch(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	require.NoError(t, h.broker.Stop(ctx))

	assert.Empty(t, awaitResult(t, ticket))
	assert.Equal(t, []scan.Outcome{scan.OutcomeShutdown}, h.journal.outcomes())
	_, unmounts := h.surface.counts()
	assert.Equal(t, 1, unmounts)

	// watchers are closed once the loop exits
	for range watch {
	}

	_, err = h.broker.Submit(uuid.New(), "")
	assert.ErrorIs(t, err, errs.ErrBrokerClosed)
	_, err = h.broker.RequestScan(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, errs.ErrBrokerClosed)
	assert.NoError(t, h.broker.Stop(ctx))
}

func TestBrokerWatch(t *testing.T) {
	h := grantedHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states, err := h.broker.Watch(ctx)
	require.NoError(t, err)

	first := <-states
	assert.Equal(t, capture.PhaseIdle, first.Phase)

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)

	seen := func(pred func(usecase.CaptureState) bool) {
		t.Helper()
		deadline := time.After(waitFor)
		for {
			select {
			case st := <-states:
				if pred(st) {
					return
				}
			case <-deadline:
				t.Fatal("expected state never published")
			}
		}
	}
	seen(func(st usecase.CaptureState) bool { return st.Phase == capture.PhaseActive })

	require.NoError(t, h.broker.Dismiss(context.Background()))
	awaitResult(t, ticket)
	seen(func(st usecase.CaptureState) bool {
		return st.Phase == capture.PhaseIdle && st.LastOutcome == scan.OutcomeDismissed
	})

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-states:
			return !ok
		default:
			return false
		}
	}, waitFor, tick)
}

func TestBrokerWatchWithCancelledContext(t *testing.T) {
	h := grantedHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range 200 {
		ch, err := h.broker.Watch(ctx)
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, ch)
		}
	}

	require.Eventually(t, func() bool {
		return usecase.WatcherCount(h.broker) == 0
	}, waitFor, tick, "watchers registered with a cancelled context were not released")

	// a live watcher is unaffected
	live, err := h.broker.Watch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, capture.PhaseIdle, (<-live).Phase)
	assert.Equal(t, 1, usecase.WatcherCount(h.broker))
}

func TestBrokerStopBeforeStart(t *testing.T) {
	h := newUnstartedBrokerHarness(t)

	ticket, err := h.broker.Submit(uuid.New(), "queued before start")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	require.NoError(t, h.broker.Stop(ctx))

	assert.Empty(t, awaitResult(t, ticket))
	assert.Equal(t, []scan.Outcome{scan.OutcomeShutdown}, h.journal.outcomes())
	mounts, _ := h.surface.counts()
	assert.Zero(t, mounts)
	assert.Zero(t, h.clk.PendingTimers())
}

func TestBrokerTimeoutRunsFromSubmission(t *testing.T) {
	h := newUnstartedBrokerHarness(t)
	h.platform.EXPECT().QueryPermission(gomock.Any()).Return(capability.StatusGranted, nil).AnyTimes()

	ticket, err := h.broker.Submit(uuid.New(), "")
	require.NoError(t, err)

	// the loop picks the request up ten seconds late
	h.clk.Add(10 * time.Second)
	h.broker.Start()
	h.waitPhase(t, capture.PhaseActive)

	h.clk.Add(19 * time.Second)
	assertPending(t, ticket)

	h.clk.Add(time.Second)
	assert.Empty(t, awaitResult(t, ticket))
	require.Equal(t, []scan.Outcome{scan.OutcomeTimedOut}, h.waitOutcomes(t, 1))

	rec := h.journal.records()[0]
	assert.Equal(t, requestTimeout, rec.SettledAt.Sub(rec.RequestedAt))
}
