package errs

import "errors"

// Sentinel errors shared by the usecase, infra and handler layers
var (
	// Broker errors
	ErrBrokerClosed = errors.New("scan broker closed")

	// Capture errors
	ErrInvalidTransition  = errors.New("invalid capture session transition")
	ErrSurfaceUnavailable = errors.New("capture surface unavailable")
	ErrPermissionDenied   = errors.New("camera permission denied")
	ErrNoPendingPrompt    = errors.New("no pending permission prompt")

	// Bridge errors
	ErrInvalidChannelToken = errors.New("invalid bridge channel token")
	ErrUnknownBridgeMethod = errors.New("unknown bridge method")

	// Host UI errors
	ErrNoHostListener = errors.New("no host ui listener connected")

	// Journal errors
	ErrJournalWrite = errors.New("settlement journal write failed")
	ErrJournalFull  = errors.New("settlement journal buffer full")
)
