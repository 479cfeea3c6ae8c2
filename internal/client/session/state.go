package session

// State is the position of the store in its authentication cycle.
type State int

const (
	StateUnauthenticated State = iota
	// StateAuthenticating is transient: set while a snapshot is being
	// restored or a login, signup or profile update is in flight.
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
