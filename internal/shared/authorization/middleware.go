package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserRole is the gin context key the auth middleware stores the
// verified role under.
const ContextKeyUserRole = "user_role"

// RequireRole gates a route on an exact role match. The check is pure: no
// lookup, no hierarchy. A missing role means the auth middleware did not
// run, which is a wiring error surfaced as 401.
func RequireRole(required Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue := c.GetString(ContextKeyUserRole)
		if roleValue == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			c.Abort()
			return
		}

		role, ok := ParseRole(roleValue)
		if !ok || role != required {
			c.JSON(http.StatusForbidden, gin.H{
				"error": required.String() + " access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireOperation gates a route using the static operation table.
func RequireOperation(op Operation) gin.HandlerFunc {
	return RequireRole(RequiredRole(op))
}
