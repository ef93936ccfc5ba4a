package capture

import (
	"time"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/pkg/errs"
)

// Session owns the mounted lifetime of the capture surface. It is not safe for
// concurrent use: the broker drives it from its single event loop.
//
// Invariant: the surface is mounted iff phase == PhaseActive.
type Session struct {
	phase          Phase
	torchOn        bool
	dismissVisible bool
	mounted        bool

	surface     Surface
	scheduler   Scheduler
	revealDelay time.Duration
	cancel      func() bool
}

func NewSession(surface Surface, scheduler Scheduler, revealDelay time.Duration) *Session {
	return &Session{
		phase:       PhaseIdle,
		surface:     surface,
		scheduler:   scheduler,
		revealDelay: revealDelay,
	}
}

// Open moves Idle -> AwaitingPermission. The caller then queries the capability gate
// and reports the answer through ResolvePermission.
func (s *Session) Open() error {
	if s.phase != PhaseIdle {
		return errs.ErrInvalidTransition
	}
	s.phase = PhaseAwaitingPermission
	return nil
}

// ResolvePermission applies the gate's answer. A granted status whose mount fails
// lands in PermissionDenied with an error marked errs.ErrSurfaceUnavailable.
func (s *Session) ResolvePermission(status capability.Status) error {
	if s.phase != PhaseAwaitingPermission {
		return errs.ErrInvalidTransition
	}
	if status != capability.StatusGranted {
		s.phase = PhasePermissionDenied
		return nil
	}

	if err := s.surface.Mount(); err != nil {
		s.phase = PhasePermissionDenied
		return errs.Mark(errs.Wrap(err, "mount capture surface"), errs.ErrSurfaceUnavailable)
	}
	s.mounted = true
	s.phase = PhaseActive
	s.cancel = s.scheduler.Schedule(s.revealDelay, s.revealDismiss)
	return nil
}

func (s *Session) revealDismiss() {
	if s.phase != PhaseActive {
		return
	}
	s.dismissVisible = true
}

// ToggleTorch flips the torch while Active and reports whether anything changed.
func (s *Session) ToggleTorch() bool {
	if s.phase != PhaseActive {
		return false
	}
	s.torchOn = !s.torchOn
	s.surface.SetTorch(s.torchOn)
	return true
}

// Close tears the session down to Idle. It is idempotent and also accepts
// AwaitingPermission, where a request can be settled before the gate answers.
func (s *Session) Close() {
	if s.phase == PhaseIdle || s.phase == PhaseUnmounting {
		return
	}
	s.phase = PhaseUnmounting

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.mounted {
		if s.torchOn {
			s.surface.SetTorch(false)
		}
		s.surface.Unmount()
		s.mounted = false
	}
	s.torchOn = false
	s.dismissVisible = false
	s.phase = PhaseIdle
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:                    s.phase,
		TorchOn:                  s.torchOn,
		DismissAffordanceVisible: s.dismissVisible,
		Mounted:                  s.mounted,
	}
}
