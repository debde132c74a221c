package util

import (
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "user_id"
	sessionIDKey = "session_id"
)

// SetSession stores the authenticated user id and session token for downstream handlers.
func SetSession(c *gin.Context, userID uint, sessionID string) {
	c.Set(userIDKey, userID)
	c.Set(sessionIDKey, sessionID)
}

// GetUserID extracts the authenticated user id placed by the session middleware.
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	if !ok || uid == 0 {
		return 0, false
	}
	return uid, true
}

// GetSessionID extracts the session token the current request authenticated with.
func GetSessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	sid, ok := v.(string)
	return sid, ok && sid != ""
}
