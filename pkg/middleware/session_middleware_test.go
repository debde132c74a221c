package middleware

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/util"
)

var validToken = strings.Repeat("ab", 32)

type stubResolver struct {
	userID uint
	ok     bool
	err    error
	calls  int
}

func (s *stubResolver) ResolveSession(_ context.Context, _ string) (uint, bool, error) {
	s.calls++
	return s.userID, s.ok, s.err
}

func newRouter(resolver SessionResolver, required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	})
	r.GET("/me", SessionAuth(resolver, required, "Not authenticated"), func(c *gin.Context) {
		uid, ok := util.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "authenticated": ok})
	})
	return r
}

func doGet(r http.Handler, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuthRequiredWithoutCookie(t *testing.T) {
	res := &stubResolver{}
	w := doGet(newRouter(res, true), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if res.calls != 0 {
		t.Fatalf("resolver should not be called without a cookie")
	}
}

func TestSessionAuthMalformedCookieSkipsLookup(t *testing.T) {
	res := &stubResolver{userID: 1, ok: true}
	w := doGet(newRouter(res, true), "not-hex")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if res.calls != 0 {
		t.Fatalf("resolver should not be called for malformed tokens")
	}
}

func TestSessionAuthValid(t *testing.T) {
	res := &stubResolver{userID: 7, ok: true}
	w := doGet(newRouter(res, true), validToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"user_id":7`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestSessionAuthOptionalPassesThrough(t *testing.T) {
	res := &stubResolver{ok: false}
	w := doGet(newRouter(res, false), validToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestSessionAuthResolverErrorAborts(t *testing.T) {
	res := &stubResolver{err: errors.New("db down")}
	r := newRouter(res, true)
	w := doGet(r, validToken)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestSetSessionCookieAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	c.Request.TLS = &tls.ConnectionState{}

	SetSessionCookie(c, validToken, 30*24*time.Hour)

	header := w.Header().Get("Set-Cookie")
	for _, want := range []string{"session_id=" + validToken, "HttpOnly", "SameSite=Lax", "Secure", "Max-Age=2592000"} {
		if !strings.Contains(header, want) {
			t.Fatalf("Set-Cookie %q missing %q", header, want)
		}
	}
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

	ClearSessionCookie(c)

	header := w.Header().Get("Set-Cookie")
	if !strings.Contains(header, "Max-Age=0") {
		t.Fatalf("expected cookie to be expired, got %q", header)
	}
	if strings.Contains(header, "Secure") {
		t.Fatalf("plain http request should not get Secure, got %q", header)
	}
}
