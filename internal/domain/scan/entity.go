package scan

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Settlement is a single-use resolution slot. The unset -> resolved transition happens
// at most once; later attempts are no-ops.
type Settlement struct {
	state   atomic.Uint32
	value   string
	outcome Outcome
}

const (
	settlementUnset uint32 = iota
	settlementResolving
	settlementResolved
)

// Resolve stores value and outcome if the slot is still unset and reports whether
// this call won.
func (s *Settlement) Resolve(value string, outcome Outcome) bool {
	if !s.state.CompareAndSwap(settlementUnset, settlementResolving) {
		return false
	}
	if !outcome.CarriesValue() {
		value = ""
	}
	s.value = value
	s.outcome = outcome
	s.state.Store(settlementResolved)
	return true
}

func (s *Settlement) IsResolved() bool {
	return s.state.Load() != settlementUnset
}

// Value returns the settled value and outcome; ok is false until Resolve has completed.
func (s *Settlement) Value() (value string, outcome Outcome, ok bool) {
	if s.state.Load() != settlementResolved {
		return "", "", false
	}
	return s.value, s.outcome, true
}

// Request is one outstanding ask for a scan result.
type Request struct {
	id         uuid.UUID
	channelID  uuid.UUID
	reason     string
	createdAt  time.Time
	settlement Settlement
}

// NewRequest never validates reason: it is caller-supplied free text and may be empty.
func NewRequest(channelID uuid.UUID, reason string, now time.Time) *Request {
	return &Request{
		id:        uuid.New(),
		channelID: channelID,
		reason:    reason,
		createdAt: now,
	}
}

func (r *Request) Settle(value string, outcome Outcome) bool {
	return r.settlement.Resolve(value, outcome)
}

func (r *Request) IsSettled() bool {
	return r.settlement.IsResolved()
}

func (r *Request) Result() (string, Outcome, bool) {
	return r.settlement.Value()
}

func (r *Request) Deadline(timeout time.Duration) time.Time {
	return r.createdAt.Add(timeout)
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) ChannelID() uuid.UUID { return r.channelID }
func (r *Request) Reason() string       { return r.reason }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
