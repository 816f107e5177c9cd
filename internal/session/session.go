// Package session models the authentication lifecycle as an explicit state
// machine. A session starts Unknown, resolves to Authenticated or Anonymous
// on the first signal from the identity provider, and may flip between those
// two at any time afterwards (sign-out, token expiry). Gated views consult
// the session through EvaluateGate and must never show protected content
// after the session leaves Authenticated.
package session

// State is the resolution state of the session.
type State int

const (
	// StateUnknown means no signal has arrived yet; gated views must
	// suspend rendering rather than decide.
	StateUnknown State = iota
	StateAuthenticated
	StateAnonymous
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Status is the session's current state plus the identity it resolved to.
// Identity is the user ID when authenticated and empty otherwise.
type Status struct {
	State    State
	Identity string
}

// Signal is one event from the identity provider's status stream. An empty
// Identity means "identity absent" (anonymous); anything else means
// "identity present".
type Signal struct {
	Identity string
}

// Authenticated builds a signal for an identity-present event.
func Authenticated(identity string) Signal {
	return Signal{Identity: identity}
}

// Anonymous builds a signal for an identity-absent event.
func Anonymous() Signal {
	return Signal{}
}
