package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"listkeeper/internal/session"
	"listkeeper/pkg/response"
)

// Auth requires a bearer token matching the established session. Requests
// without one, or arriving before sign-in, are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.sessions.State() != session.StateAuthenticated {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := bearerToken(c)
		if token == "" || token != m.sessions.AccessToken() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
