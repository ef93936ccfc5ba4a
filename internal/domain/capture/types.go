package capture

import "time"

type Phase string

const (
	PhaseIdle               Phase = "idle"
	PhaseAwaitingPermission Phase = "awaiting_permission"
	PhasePermissionDenied   Phase = "permission_denied"
	PhaseActive             Phase = "active"
	PhaseUnmounting         Phase = "unmounting"
)

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseIdle, PhaseAwaitingPermission, PhasePermissionDenied, PhaseActive, PhaseUnmounting:
		return true
	default:
		return false
	}
}

// Surface is the native capture viewfinder. Only Session calls it.
//
//go:generate mockgen -source=types.go -destination=../../../tests/mock/capture/mock_capture.go -package=capturemock
type Surface interface {
	Mount() error
	Unmount()
	SetTorch(on bool)
}

// Scheduler runs fn after d on the owner's event loop. The returned cancel func reports
// whether fn was prevented from running.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func() bool)
}

// Snapshot is the render-facing view of a session.
type Snapshot struct {
	Phase                    Phase
	TorchOn                  bool
	DismissAffordanceVisible bool
	Mounted                  bool
}
