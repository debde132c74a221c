package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/token"
	"seungpyo.lee/SocialFeed/pkg/util"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// SessionResolver maps a session token to the owning user id.
// ok is false when the token is unknown or expired; err is reserved for storage failures.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (userID uint, ok bool, err error)
}

// SessionAuth returns a Gin middleware that resolves the session cookie and injects the user id
// into the context. When required is true, unauthenticated requests are aborted with 401 and
// unauthorizedMsg.
func SessionAuth(resolver SessionResolver, required bool, unauthorizedMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" || token.Validate(sessionID) != nil {
			reject(c, required, unauthorizedMsg)
			return
		}
		userID, ok, err := resolver.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !ok {
			reject(c, required, unauthorizedMsg)
			return
		}
		util.SetSession(c, userID, sessionID)
		c.Next()
	}
}

func reject(c *gin.Context, required bool, msg string) {
	if required {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}
	c.Next()
}
