package models

// LoadState describes where the note collection is in its load lifecycle.
// The presentation layer uses it to tell an empty list from a failed load.
type LoadState int

const (
	// LoadStateIdle means no load was requested for the current user.
	LoadStateIdle LoadState = iota
	// LoadStateLoading means a load is in flight.
	LoadStateLoading
	// LoadStateLoaded means the collection mirrors the last successful fetch.
	LoadStateLoaded
	// LoadStateFailed means the last load failed and the collection is empty.
	LoadStateFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadStateIdle:
		return "idle"
	case LoadStateLoading:
		return "loading"
	case LoadStateLoaded:
		return "loaded"
	case LoadStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
