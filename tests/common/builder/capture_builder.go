//go:build unit || e2e

package builder

import (
	"time"

	"scan-bridge/internal/domain/capability"
	"scan-bridge/internal/domain/capture"
	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/usecase"

	"github.com/google/uuid"
)

type CaptureStateBuilder struct {
	state usecase.CaptureState
}

func NewCaptureStateBuilder() *CaptureStateBuilder {
	return &CaptureStateBuilder{
		state: usecase.CaptureState{
			Phase:      capture.PhaseActive,
			RequestID:  uuid.New(),
			Reason:     "Scan the package label",
			Capability: capability.StatusGranted,
		},
	}
}

func (b *CaptureStateBuilder) WithPhase(phase capture.Phase) *CaptureStateBuilder {
	b.state.Phase = phase
	return b
}

func (b *CaptureStateBuilder) WithTorch(on bool) *CaptureStateBuilder {
	b.state.TorchOn = on
	return b
}

func (b *CaptureStateBuilder) WithDismissVisible(visible bool) *CaptureStateBuilder {
	b.state.DismissAffordanceVisible = visible
	return b
}

func (b *CaptureStateBuilder) WithLastOutcome(outcome scan.Outcome) *CaptureStateBuilder {
	b.state.LastOutcome = outcome
	return b
}

// Idle clears the request fields the way the broker reports an empty slot.
func (b *CaptureStateBuilder) Idle() *CaptureStateBuilder {
	b.state.Phase = capture.PhaseIdle
	b.state.RequestID = uuid.Nil
	b.state.Reason = ""
	b.state.TorchOn = false
	b.state.DismissAffordanceVisible = false
	return b
}

func (b *CaptureStateBuilder) Build() usecase.CaptureState {
	return b.state
}

type SettlementRecordBuilder struct {
	rec usecase.SettlementRecord
}

func NewSettlementRecordBuilder() *SettlementRecordBuilder {
	requested := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &SettlementRecordBuilder{
		rec: usecase.SettlementRecord{
			RequestID:   uuid.New(),
			ChannelID:   uuid.New(),
			Reason:      "Scan the package label",
			Outcome:     scan.OutcomeDecoded,
			Symbology:   scan.SymbologyQR,
			RequestedAt: requested,
			SettledAt:   requested.Add(1500 * time.Millisecond),
		},
	}
}

func (b *SettlementRecordBuilder) WithOutcome(outcome scan.Outcome) *SettlementRecordBuilder {
	b.rec.Outcome = outcome
	if !outcome.CarriesValue() {
		b.rec.Symbology = ""
	}
	return b
}

func (b *SettlementRecordBuilder) WithChannelID(id uuid.UUID) *SettlementRecordBuilder {
	b.rec.ChannelID = id
	return b
}

func (b *SettlementRecordBuilder) WithSettledAt(t time.Time) *SettlementRecordBuilder {
	b.rec.RequestedAt = t.Add(-time.Second)
	b.rec.SettledAt = t
	return b
}

func (b *SettlementRecordBuilder) Build() usecase.SettlementRecord {
	return b.rec
}
