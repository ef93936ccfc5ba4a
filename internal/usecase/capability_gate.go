package usecase

import (
	"context"
	"log/slog"
	"sync"

	"scan-bridge/internal/domain/capability"

	"golang.org/x/sync/singleflight"
)

const (
	flightQuery   = "query"
	flightRequest = "request"
)

// CapabilityGate caches the camera authorization status. Concurrent Query or Request
// calls share one in-flight platform call instead of prompting twice.
//
// Platform failures (no camera, broken API) collapse into StatusDenied.
type CapabilityGate struct {
	platform CameraPlatform
	logger   *slog.Logger

	mu     sync.RWMutex
	status capability.Status
	group  singleflight.Group
}

func NewCapabilityGate(platform CameraPlatform, logger *slog.Logger) *CapabilityGate {
	if logger == nil {
		logger = slog.Default()
	}
	return &CapabilityGate{
		platform: platform,
		logger:   logger.With("component", "capability_gate"),
		status:   capability.StatusUnknown,
	}
}

func (g *CapabilityGate) Status() capability.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// Query returns the cached status when known, otherwise checks the platform once.
func (g *CapabilityGate) Query(ctx context.Context) capability.Status {
	if s := g.Status(); s.IsKnown() {
		return s
	}
	v, _, _ := g.group.Do(flightQuery, func() (any, error) {
		if s := g.Status(); s.IsKnown() {
			return s, nil
		}
		status, err := g.platform.QueryPermission(ctx)
		return g.absorb(ctx, "query", status, err), nil
	})
	return v.(capability.Status)
}

// Request prompts unless already granted. A denied status only changes when Request
// is called again; nothing retries on its own.
func (g *CapabilityGate) Request(ctx context.Context) capability.Status {
	if s := g.Status(); s == capability.StatusGranted {
		return s
	}
	v, _, _ := g.group.Do(flightRequest, func() (any, error) {
		status, err := g.platform.RequestPermission(ctx)
		return g.absorb(ctx, "request", status, err), nil
	})
	return v.(capability.Status)
}

func (g *CapabilityGate) absorb(ctx context.Context, op string, status capability.Status, err error) capability.Status {
	if err != nil {
		if ctx.Err() != nil {
			// abandoned, not answered
			return g.Status()
		}
		g.logger.Warn("camera permission platform call failed", "op", op, "error", err)
		status = capability.StatusDenied
	}
	if !status.IsValid() {
		status = capability.StatusDenied
	}

	g.mu.Lock()
	prev := g.status
	if status.IsKnown() || op == flightRequest {
		g.status = status
	}
	current := g.status
	g.mu.Unlock()

	if prev != current {
		g.logger.Info("camera permission changed", "op", op, "from", prev, "to", current)
	}
	return current
}
