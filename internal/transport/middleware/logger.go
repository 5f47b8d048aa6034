package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger emits one structured entry per request. When a session is active the
// entry also carries who acted, so admin actions (event creation, participant
// removal, exports) are attributable in the log stream.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start),
			"client_ip": c.ClientIP(),
		})

		// session claims are set by LoadSession/RequireRole before the
		// handler runs, so they are visible here after c.Next()
		if claims, ok := CurrentSession(c); ok {
			entry = entry.WithFields(logrus.Fields{
				"username": claims.Username,
				"role":     claims.Role,
			})
		}

		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		if c.Writer.Status() >= 400 {
			entry.Error("request failed")
		} else {
			entry.Info("request handled")
		}
	}
}
