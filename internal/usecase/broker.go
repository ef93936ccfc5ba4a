package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/pkg/clock"
	"scan-bridge/internal/pkg/errs"

	"github.com/google/uuid"
)

const eventQueueSize = 64

type BrokerConfig struct {
	RequestTimeout     time.Duration
	DismissRevealDelay time.Duration
}

type BrokerDeps struct {
	Gate     *CapabilityGate
	Sink     *DecodeSink
	Surface  capture.Surface
	Ack      Acknowledger
	Journal  SettlementJournal
	Observer Observer
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Broker arbitrates the single outstanding scan request. Every state transition runs
// on one goroutine fed by the events queue, so the check-then-set on a request's
// settlement slot never interleaves with another transition.
type Broker struct {
	cfg      BrokerConfig
	gate     *CapabilityGate
	sink     *DecodeSink
	surface  capture.Surface
	ack      Acknowledger
	journal  SettlementJournal
	observer Observer
	clock    clock.Clock
	logger   *slog.Logger

	events  chan func()
	quit    chan struct{}
	stopped chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.RWMutex
	closed  bool
	started bool

	// owned by the loop goroutine
	current     *pending
	closing     bool
	lastOutcome scan.Outcome
	watchers    map[int]chan CaptureState
	nextWatcher int
}

type pending struct {
	req     *scan.Request
	result  chan string
	timer   clock.Timer
	session *capture.Session
}

// Ticket is the caller's handle on an admitted request.
type Ticket struct {
	RequestID uuid.UUID
	result    <-chan string
}

// Done yields the settled value exactly once.
func (t *Ticket) Done() <-chan string {
	return t.result
}

func NewBroker(cfg BrokerConfig, deps BrokerDeps) *Broker {
	if deps.Ack == nil {
		deps.Ack = noopAcknowledger{}
	}
	if deps.Journal == nil {
		deps.Journal = NoopJournal{}
	}
	if deps.Observer == nil {
		deps.Observer = noopObserver{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Broker{
		cfg:      cfg,
		gate:     deps.Gate,
		sink:     deps.Sink,
		surface:  deps.Surface,
		ack:      deps.Ack,
		journal:  deps.Journal,
		observer: deps.Observer,
		clock:    deps.Clock,
		logger:   deps.Logger.With("component", "broker"),
		events:   make(chan func(), eventQueueSize),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		watchers: make(map[int]chan CaptureState),
	}
}

func (b *Broker) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started || b.closed {
		return
	}
	b.started = true
	go b.loop()
}

// Stop settles any outstanding request with an empty string and waits for the loop.
func (b *Broker) Stop(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	started := b.started
	b.mu.Unlock()

	b.cancel()
	close(b.quit)
	if !started {
		// no loop will run; settle whatever was queued on this goroutine
		b.drain()
		close(b.stopped)
		return nil
	}

	select {
	case <-b.stopped:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "wait for broker loop")
	}
}

func (b *Broker) loop() {
	defer close(b.stopped)
	for {
		select {
		case ev := <-b.events:
			ev()
		case <-b.quit:
			b.drain()
			return
		}
	}
}

// drain runs the queued events with admission closed, settles the outstanding
// request and closes every watcher. post refuses new events once closed is set.
func (b *Broker) drain() {
	b.closing = true
	for {
		select {
		case ev := <-b.events:
			ev()
		default:
			if b.current != nil {
				b.settle(b.current, "", scan.OutcomeShutdown, "")
			}
			for id := range b.watchers {
				b.dropWatcher(id)
			}
			return
		}
	}
}

func (b *Broker) post(ev func()) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return errs.ErrBrokerClosed
	}
	b.events <- ev
	return nil
}

// call runs fn on the loop and waits for it.
func (b *Broker) call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := b.post(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-b.stopped:
		select {
		case <-done:
			return nil
		default:
			return errs.ErrBrokerClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit admits a new request. A request already outstanding is settled with an
// empty string first.
func (b *Broker) Submit(channelID uuid.UUID, reason string) (*Ticket, error) {
	p := &pending{
		req:    scan.NewRequest(channelID, reason, b.clock.Now()),
		result: make(chan string, 1),
	}
	if err := b.post(func() { b.admit(p) }); err != nil {
		return nil, err
	}
	return &Ticket{RequestID: p.req.ID(), result: p.result}, nil
}

// RequestScan submits and waits. When ctx ends first the request is dismissed, so the
// call still returns only after settlement.
func (b *Broker) RequestScan(ctx context.Context, channelID uuid.UUID, reason string) (string, error) {
	t, err := b.Submit(channelID, reason)
	if err != nil {
		return "", err
	}
	select {
	case v := <-t.Done():
		return v, nil
	case <-ctx.Done():
	}
	if err := b.DismissRequest(t.RequestID); err != nil {
		// loop is draining; it settles everything before exiting
		b.logger.Debug("dismiss after caller cancel not posted", "request_id", t.RequestID, "error", err)
	}
	return <-t.Done(), nil
}

func (b *Broker) admit(p *pending) {
	if b.closing {
		b.finish(p, "", scan.OutcomeShutdown, "")
		return
	}
	if b.current != nil {
		b.logger.Info("superseding outstanding scan request",
			"request_id", b.current.req.ID(), "superseded_by", p.req.ID())
		b.settle(b.current, "", scan.OutcomeSuperseded, "")
	}

	id := p.req.ID()
	b.current = p
	p.session = capture.NewSession(b.surface, loopScheduler{b: b}, b.cfg.DismissRevealDelay)
	// the timeout runs from submission, not from admission
	p.timer = b.clock.AfterFunc(p.req.Deadline(b.cfg.RequestTimeout).Sub(b.clock.Now()), func() {
		_ = b.post(func() { b.onTimeout(id) })
	})
	_ = p.session.Open()

	b.observer.RequestAdmitted()
	b.logger.Info("scan request admitted",
		"request_id", id, "channel_id", p.req.ChannelID(), "reason", p.req.Reason(), "timeout", b.cfg.RequestTimeout)
	b.publish()

	if status := b.gate.Status(); status.IsKnown() {
		b.resolvePermission(id, status)
		return
	}
	go b.awaitPermission(id)
}

func (b *Broker) awaitPermission(id uuid.UUID) {
	status := b.gate.Query(b.ctx)
	if status == capability.StatusUnknown {
		status = b.gate.Request(b.ctx)
	}
	_ = b.post(func() { b.resolvePermission(id, status) })
}

func (b *Broker) resolvePermission(id uuid.UUID, status capability.Status) {
	p := b.current
	if p == nil || p.req.ID() != id {
		return
	}

	err := p.session.ResolvePermission(status)
	switch {
	case errs.Is(err, errs.ErrSurfaceUnavailable):
		b.logger.Warn("capture surface unavailable", "request_id", id, "error", err)
		b.settle(p, "", scan.OutcomeUnavailable, "")
		return
	case err != nil:
		b.logger.Error("unexpected permission transition", "request_id", id, "phase", p.session.Phase(), "error", err)
		return
	}

	if p.session.Phase() == capture.PhasePermissionDenied {
		b.logger.Info("camera permission denied", "request_id", id)
		b.publish()
		b.settle(p, "", scan.OutcomeDenied, "")
		return
	}
	b.observer.SurfaceMounted(true)
	b.publish()
}

func (b *Broker) onTimeout(id uuid.UUID) {
	if p := b.current; p != nil && p.req.ID() == id {
		b.settle(p, "", scan.OutcomeTimedOut, "")
	}
}

// Dismiss settles the outstanding request, if any, with an empty string.
func (b *Broker) Dismiss(ctx context.Context) error {
	return b.call(ctx, func() {
		if p := b.current; p != nil {
			if b.settle(p, "", scan.OutcomeDismissed, "") {
				go playAck(b.ack, b.logger, AckDismiss)
			}
		}
	})
}

// DismissRequest dismisses only if id is still the outstanding request.
func (b *Broker) DismissRequest(id uuid.UUID) error {
	return b.post(func() {
		if p := b.current; p != nil && p.req.ID() == id {
			b.settle(p, "", scan.OutcomeDismissed, "")
		}
	})
}

func (b *Broker) ToggleTorch(ctx context.Context) (bool, error) {
	var on bool
	err := b.call(ctx, func() {
		p := b.current
		if p == nil {
			return
		}
		if p.session.ToggleTorch() {
			b.publish()
		}
		on = p.session.Snapshot().TorchOn
	})
	return on, err
}

// Decode feeds one raw event from the decode source. Events outside an Active
// session are dropped before debouncing.
func (b *Broker) Decode(_ context.Context, raw scan.RawDecode) error {
	return b.post(func() { b.onDecode(raw) })
}

func (b *Broker) onDecode(raw scan.RawDecode) {
	p := b.current
	if p == nil || p.session.Phase() != capture.PhaseActive {
		b.observer.DecodeEvent(DecodeDropped)
		b.logger.Debug("decode dropped: no active capture session")
		return
	}
	cand := b.sink.OnCandidate(raw)
	if cand == nil {
		return
	}
	b.settle(p, cand.Value, scan.OutcomeDecoded, cand.Symbology)
}

func (b *Broker) RetryPermission(ctx context.Context) capability.Status {
	return b.gate.Request(ctx)
}

func (b *Broker) Snapshot(ctx context.Context) (CaptureState, error) {
	var st CaptureState
	err := b.call(ctx, func() { st = b.state() })
	return st, err
}

// Watch streams a state after every transition, starting with the current one. Slow
// watchers miss intermediate states rather than stall the loop.
func (b *Broker) Watch(ctx context.Context) (<-chan CaptureState, error) {
	ch := make(chan CaptureState, 8)
	id := -1
	err := b.call(ctx, func() {
		if ctx.Err() != nil {
			return
		}
		id = b.nextWatcher
		b.nextWatcher++
		b.watchers[id] = ch
		ch <- b.state()
	})
	if err != nil {
		// the registration may still run after call gave up waiting; queue its removal
		_ = b.post(func() { b.dropWatcher(id) })
		return nil, err
	}
	if id < 0 {
		return nil, ctx.Err()
	}
	go func() {
		select {
		case <-ctx.Done():
			_ = b.post(func() { b.dropWatcher(id) })
		case <-b.stopped:
		}
	}()
	return ch, nil
}

func (b *Broker) dropWatcher(id int) {
	if w, ok := b.watchers[id]; ok {
		delete(b.watchers, id)
		close(w)
	}
}

func (b *Broker) state() CaptureState {
	st := CaptureState{
		Phase:       capture.PhaseIdle,
		Capability:  b.gate.Status(),
		LastOutcome: b.lastOutcome,
	}
	if p := b.current; p != nil {
		snap := p.session.Snapshot()
		st.Phase = snap.Phase
		st.TorchOn = snap.TorchOn
		st.DismissAffordanceVisible = snap.DismissAffordanceVisible
		st.RequestID = p.req.ID()
		st.Reason = p.req.Reason()
	}
	return st
}

func (b *Broker) publish() {
	if len(b.watchers) == 0 {
		return
	}
	st := b.state()
	for _, ch := range b.watchers {
		select {
		case ch <- st:
		default:
		}
	}
}

// settle is the only place a request leaves the outstanding slot. It reports whether
// this call won the race.
func (b *Broker) settle(p *pending, value string, outcome scan.Outcome, sym scan.Symbology) bool {
	if p.req.IsSettled() {
		return false
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	mounted := p.session != nil && p.session.Snapshot().Mounted
	if p.session != nil {
		p.session.Close()
	}
	if mounted {
		b.observer.SurfaceMounted(false)
	}
	if b.current == p {
		b.current = nil
	}
	if !b.finish(p, value, outcome, sym) {
		return false
	}
	b.publish()
	return true
}

func (b *Broker) finish(p *pending, value string, outcome scan.Outcome, sym scan.Symbology) bool {
	if !p.req.Settle(value, outcome) {
		return false
	}
	v, _, _ := p.req.Result()
	p.result <- v

	now := b.clock.Now()
	elapsed := now.Sub(p.req.CreatedAt())
	b.lastOutcome = outcome
	b.observer.Settled(outcome, elapsed)
	b.logger.Info("scan request settled",
		"request_id", p.req.ID(), "outcome", outcome, "elapsed", elapsed, "has_value", v != "")

	rec := SettlementRecord{
		RequestID:   p.req.ID(),
		ChannelID:   p.req.ChannelID(),
		Reason:      p.req.Reason(),
		Outcome:     outcome,
		Symbology:   sym,
		RequestedAt: p.req.CreatedAt(),
		SettledAt:   now,
	}
	if err := b.journal.Append(rec); err != nil {
		b.logger.Warn("settlement not journaled", "request_id", p.req.ID(), "error", err)
	}
	return true
}

type loopScheduler struct {
	b *Broker
}

func (s loopScheduler) Schedule(d time.Duration, fn func()) func() bool {
	t := s.b.clock.AfterFunc(d, func() {
		_ = s.b.post(func() {
			fn()
			s.b.publish()
		})
	})
	return t.Stop
}

var _ CaptureControl = (*Broker)(nil)
