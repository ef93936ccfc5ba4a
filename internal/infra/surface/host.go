package surface

import (
	"log/slog"
	"sync"

	"scan-bridge/internal/pkg/errs"
)

// HostSurface tracks the native viewfinder. The host UI renders it from the broker's
// state stream; this adapter only enforces that a missing camera cannot be mounted.
type HostSurface struct {
	available bool
	logger    *slog.Logger

	mu      sync.Mutex
	mounted bool
	torchOn bool
	mounts  int
}

func NewHostSurface(available bool, logger *slog.Logger) *HostSurface {
	if logger == nil {
		logger = slog.Default()
	}
	return &HostSurface{
		available: available,
		logger:    logger.With("component", "capture_surface"),
	}
}

func (s *HostSurface) Mount() error {
	if !s.available {
		return errs.Wrap(errs.ErrSurfaceUnavailable, "no camera device")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = true
	s.mounts++
	s.logger.Debug("capture surface mounted", "mounts", s.mounts)
	return nil
}

func (s *HostSurface) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = false
	s.torchOn = false
	s.logger.Debug("capture surface unmounted")
}

func (s *HostSurface) SetTorch(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted {
		return
	}
	s.torchOn = on
	s.logger.Debug("torch toggled", "on", on)
}

func (s *HostSurface) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

func (s *HostSurface) TorchOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.torchOn
}
