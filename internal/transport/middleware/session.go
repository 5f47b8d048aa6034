package middleware

import (
	"net/http"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/anjalishikhare80/event-management-system/pkg/session"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key the current session claims live under.
const SessionKey = "session"

// LoadSession makes the current session claims, if any, available to
// handlers and templates. It never rejects a request by itself.
func LoadSession(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := sm.Current(c); err == nil {
			c.Set(SessionKey, claims)
		}
		c.Next()
	}
}

// RequireRole guards a route group for one role. On a wrong or missing role
// the request is discarded with a flash notice and a redirect to the login
// page, never an HTTP error status.
func RequireRole(sm *session.Manager, role entity.Role, notice string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sm.Current(c)
		if err != nil || claims.Role != role {
			if err != nil {
				_ = c.Error(entity.ErrUnauthorized)
			} else {
				_ = c.Error(entity.ErrForbidden)
			}
			session.Flash(c, "danger", notice)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(SessionKey, claims)
		c.Next()
	}
}

// CurrentSession returns the claims stored by LoadSession or RequireRole.
func CurrentSession(c *gin.Context) (*session.Claims, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*session.Claims)
	return claims, ok
}
