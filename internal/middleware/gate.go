package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/session"
)

// Gate enforces a view's declared auth requirement against the session
// status resolved for this request. The decision is computed fresh on every
// request; nothing is cached across requests, so a session that has expired
// or signed out is redirected on its very next evaluation.
//
// Decisions map to HTTP as follows: Render lets the request through,
// Redirect returns the target in the response body (the client performs the
// navigation), and Pending (a session not yet resolved) answers 503 so
// the client keeps its loading state.
func Gate(requiresAuth bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := session.EvaluateGate(SessionStatus(c), requiresAuth)

		switch result.Decision {
		case session.DecisionRender:
			if requiresAuth {
				c.Set("userID", SessionStatus(c).Identity)
			}
			c.Next()

		case session.DecisionRedirect:
			status := http.StatusUnauthorized
			code := "UNAUTHORIZED"
			message := "Authentication required"
			if result.Target == session.TargetDashboard {
				status = http.StatusForbidden
				code = "ALREADY_AUTHENTICATED"
				message = "Already signed in"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":    gin.H{"code": code, "message": message},
				"redirect": result.Target,
			})

		default: // session.DecisionPending
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": gin.H{"code": "SESSION_UNRESOLVED", "message": "Session is still resolving"},
			})
		}
	}
}
