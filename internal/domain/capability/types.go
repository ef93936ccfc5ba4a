package capability

import "errors"

var ErrInvalidStatus = errors.New("invalid capability status")

// Status is the process-wide camera authorization state.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusGranted Status = "granted"
	StatusDenied  Status = "denied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnknown, StatusGranted, StatusDenied:
		return true
	default:
		return false
	}
}

func (s Status) IsKnown() bool {
	return s == StatusGranted || s == StatusDenied
}

func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusUnknown, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
