package usecase

import (
	"context"
	"time"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/domain/scan"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

// CameraPlatform is the device permission surface.
type CameraPlatform interface {
	QueryPermission(ctx context.Context) (capability.Status, error)
	RequestPermission(ctx context.Context) (capability.Status, error)
}

type AckCause string

const (
	AckDecode  AckCause = "decode"
	AckDismiss AckCause = "dismiss"
)

// Acknowledger plays the audible/tactile cue. Callers never wait on it.
type Acknowledger interface {
	Acknowledge(ctx context.Context, cause AckCause) error
}

type SettlementRecord struct {
	RequestID   uuid.UUID
	ChannelID   uuid.UUID
	Reason      string
	Outcome     scan.Outcome
	Symbology   scan.Symbology
	RequestedAt time.Time
	SettledAt   time.Time
}

// SettlementJournal must not block: Append either buffers the record or fails fast.
type SettlementJournal interface {
	Append(rec SettlementRecord) error
}

// SettlementHistory reads back recent settlements, newest first.
type SettlementHistory interface {
	Recent(ctx context.Context, limit int) ([]SettlementRecord, error)
}

// Observer receives counters for metrics.
type Observer interface {
	RequestAdmitted()
	Settled(outcome scan.Outcome, elapsed time.Duration)
	SurfaceMounted(mounted bool)
	DecodeEvent(result string)
}

const (
	DecodeAccepted   = "accepted"
	DecodeSuppressed = "suppressed"
	DecodeDropped    = "dropped"
)

// CaptureState is what the host UI renders.
type CaptureState struct {
	Phase                    capture.Phase
	TorchOn                  bool
	DismissAffordanceVisible bool
	RequestID                uuid.UUID
	Reason                   string
	Capability               capability.Status
	LastOutcome              scan.Outcome
}

// CaptureControl is the host-UI-facing surface of the broker.
type CaptureControl interface {
	Snapshot(ctx context.Context) (CaptureState, error)
	Watch(ctx context.Context) (<-chan CaptureState, error)
	Dismiss(ctx context.Context) error
	ToggleTorch(ctx context.Context) (bool, error)
	Decode(ctx context.Context, raw scan.RawDecode) error
	RetryPermission(ctx context.Context) capability.Status
}

// PermissionPrompter lets the host UI answer a pending platform prompt.
type PermissionPrompter interface {
	Decide(granted bool) error
}

type noopObserver struct{}

func (noopObserver) RequestAdmitted()                    {}
func (noopObserver) Settled(scan.Outcome, time.Duration) {}
func (noopObserver) SurfaceMounted(bool)                 {}
func (noopObserver) DecodeEvent(string)                  {}

// NoopJournal discards records and reports an empty history.
type NoopJournal struct{}

func (NoopJournal) Append(SettlementRecord) error { return nil }
func (NoopJournal) Recent(context.Context, int) ([]SettlementRecord, error) {
	return []SettlementRecord{}, nil
}

type noopAcknowledger struct{}

func (noopAcknowledger) Acknowledge(context.Context, AckCause) error { return nil }
