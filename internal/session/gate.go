package session

// Decision is the gate's verdict for a view.
type Decision int

const (
	// DecisionPending means the session is still Unknown; the view shows a
	// loading indicator and makes no navigation decision.
	DecisionPending Decision = iota
	DecisionRender
	DecisionRedirect
)

// Redirect targets.
const (
	TargetSignIn    = "/signin"
	TargetDashboard = "/dashboard"
)

// GateResult pairs a decision with its redirect target, set only when the
// decision is DecisionRedirect.
type GateResult struct {
	Decision Decision
	Target   string
}

// EvaluateGate maps the current session status and a view's declared auth
// requirement to a rendering decision. It is a pure function and must be
// recomputed on every session transition for every mounted view; a cached
// result from before a transition is never valid.
//
//	requiresAuth  authenticated  anonymous
//	true          render         redirect to sign-in
//	false         redirect to    render
//	              dashboard
//
// While the session is Unknown the result is always pending, regardless of
// requiresAuth.
func EvaluateGate(status Status, requiresAuth bool) GateResult {
	switch status.State {
	case StateUnknown:
		return GateResult{Decision: DecisionPending}
	case StateAuthenticated:
		if requiresAuth {
			return GateResult{Decision: DecisionRender}
		}
		return GateResult{Decision: DecisionRedirect, Target: TargetDashboard}
	default: // StateAnonymous
		if requiresAuth {
			return GateResult{Decision: DecisionRedirect, Target: TargetSignIn}
		}
		return GateResult{Decision: DecisionRender}
	}
}
