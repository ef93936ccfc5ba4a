package scan

// Outcome records which trigger settled a request. Embedded callers never see it; they
// only observe the settled string.
type Outcome string

const (
	OutcomeDecoded     Outcome = "decoded"
	OutcomeDismissed   Outcome = "dismissed"
	OutcomeTimedOut    Outcome = "timed_out"
	OutcomeDenied      Outcome = "denied"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeSuperseded  Outcome = "superseded"
	OutcomeShutdown    Outcome = "shutdown"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeDecoded, OutcomeDismissed, OutcomeTimedOut, OutcomeDenied,
		OutcomeUnavailable, OutcomeSuperseded, OutcomeShutdown:
		return true
	default:
		return false
	}
}

// CarriesValue reports whether settlements with this outcome hold a decoded string.
func (o Outcome) CarriesValue() bool {
	return o == OutcomeDecoded
}
