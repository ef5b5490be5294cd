package domain

// SessionState tracks the lifecycle of a search session.
//
// Transitions are strictly ordered: Idle -> Opening -> Loading (only
// when the store was freshly created) -> Ready. Failed and Closed are
// terminal. Queries are accepted in Ready only.
type SessionState int

// Session lifecycle states.
const (
	// SessionIdle is the state before Open is called.
	SessionIdle SessionState = iota

	// SessionOpening means the store open is in flight.
	SessionOpening

	// SessionLoading means the store was freshly created and the index
	// load is in flight.
	SessionLoading

	// SessionReady means queries are accepted.
	SessionReady

	// SessionFailed means the store could not be opened. Terminal.
	SessionFailed

	// SessionClosed means the session was torn down. Terminal.
	SessionClosed
)

// String returns the state name for logs and diagnostics.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionOpening:
		return "opening"
	case SessionLoading:
		return "loading"
	case SessionReady:
		return "ready"
	case SessionFailed:
		return "failed"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can occur.
func (s SessionState) Terminal() bool {
	return s == SessionFailed || s == SessionClosed
}
