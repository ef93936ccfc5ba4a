package platform

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/pkg/errs"
)

// PromptPlatform answers camera permission questions on behalf of the native shell.
// A request with no recorded answer waits for the host UI to call Decide.
type PromptPlatform struct {
	available     bool
	promptTimeout time.Duration
	logger        *slog.Logger

	mu       sync.Mutex
	status   capability.Status
	decision chan bool
}

func NewPromptPlatform(initial capability.Status, available bool, promptTimeout time.Duration, logger *slog.Logger) *PromptPlatform {
	if logger == nil {
		logger = slog.Default()
	}
	if !initial.IsValid() {
		initial = capability.StatusUnknown
	}
	return &PromptPlatform{
		available:     available,
		promptTimeout: promptTimeout,
		logger:        logger.With("component", "camera_platform"),
		status:        initial,
	}
}

func (p *PromptPlatform) QueryPermission(_ context.Context) (capability.Status, error) {
	if !p.available {
		return capability.StatusDenied, errs.ErrSurfaceUnavailable
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, nil
}

func (p *PromptPlatform) RequestPermission(ctx context.Context) (capability.Status, error) {
	if !p.available {
		return capability.StatusDenied, errs.ErrSurfaceUnavailable
	}

	p.mu.Lock()
	if p.status == capability.StatusGranted {
		p.mu.Unlock()
		return capability.StatusGranted, nil
	}
	if p.decision == nil {
		p.decision = make(chan bool, 1)
	}
	decision := p.decision
	p.mu.Unlock()

	p.logger.Info("camera permission prompt opened")

	timer := time.NewTimer(p.promptTimeout)
	defer timer.Stop()

	var granted bool
	select {
	case granted = <-decision:
	case <-timer.C:
		p.logger.Info("camera permission prompt timed out")
	case <-ctx.Done():
		p.closePrompt(decision)
		return capability.StatusUnknown, ctx.Err()
	}

	status := capability.StatusDenied
	if granted {
		status = capability.StatusGranted
	}
	p.mu.Lock()
	p.status = status
	p.mu.Unlock()
	p.closePrompt(decision)
	return status, nil
}

// Decide answers the pending prompt.
func (p *PromptPlatform) Decide(granted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.decision == nil {
		return errs.ErrNoPendingPrompt
	}
	select {
	case p.decision <- granted:
		return nil
	default:
		return errs.ErrNoPendingPrompt
	}
}

func (p *PromptPlatform) closePrompt(decision chan bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.decision == decision {
		p.decision = nil
	}
}
