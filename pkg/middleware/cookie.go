package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie writes the session cookie. A zero maxAge produces a browser-session cookie.
func SetSessionCookie(c *gin.Context, sessionID string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, sessionID, int(maxAge.Seconds()), "/", "", IsSecureRequest(c.Request), true)
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", IsSecureRequest(c.Request), true)
}

// IsSecureRequest reports whether the request arrived over TLS, directly or via a proxy.
func IsSecureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
