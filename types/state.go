package types

// State represents a worker's lifecycle state.
//
// A worker starts in StateScanning and reaches exactly one terminal state:
//
//	StateScanning → StateFound | StateLostRace | StateExhausted | StateCancelled
//
// StateFound means the worker published the winning candidate. StateLostRace
// means the worker found a satisfying candidate but another worker claimed the
// result slot first. StateExhausted means the worker scanned its whole range
// without a match. StateCancelled means the worker observed the cancellation
// signal and stopped early.
type State int

const (
	// StateScanning indicates the worker is iterating over its range.
	StateScanning State = iota

	// StateFound indicates the worker published the winning candidate.
	StateFound

	// StateLostRace indicates another worker claimed the result slot first.
	StateLostRace

	// StateExhausted indicates the range was scanned without a match.
	StateExhausted

	// StateCancelled indicates the worker stopped after observing cancellation.
	StateCancelled
)

// Terminal reports whether the state ends a worker's scan.
func (s State) Terminal() bool {
	return s != StateScanning
}

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateScanning:
		return "Scanning"
	case StateFound:
		return "Found"
	case StateLostRace:
		return "LostRace"
	case StateExhausted:
		return "Exhausted"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
