package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/logger"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

func newEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter("info", buf)
	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log), CORS("http://localhost:5173"), ErrorHandler(log))
	r.GET("/conflict", func(c *gin.Context) { _ = c.Error(domain.NewConflictError("Username already taken")) })
	r.GET("/storage", func(c *gin.Context) {
		_ = c.Error(domain.NewStorageError("failed to load feed", errors.New("pq: relation \"posts\" does not exist")))
	})
	r.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/panic", func(c *gin.Context) { panic("unexpected") })
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerTypedError(t *testing.T) {
	var buf bytes.Buffer
	w := serve(newEngine(&buf), httptest.NewRequest(http.MethodGet, "/conflict", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if w.Body.String() != `{"error":"Username already taken"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestErrorHandlerHidesStorageDetail(t *testing.T) {
	for _, path := range []string{"/storage", "/plain"} {
		var buf bytes.Buffer
		w := serve(newEngine(&buf), httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: status = %d, want 500", path, w.Code)
		}
		if w.Body.String() != `{"error":"Internal server error"}` {
			t.Fatalf("%s: leaked detail in %s", path, w.Body.String())
		}
		requestID := w.Header().Get("X-Request-ID")
		if requestID == "" || !strings.Contains(buf.String(), "request "+requestID) {
			t.Fatalf("%s: expected log line tagged with request id, got %q", path, buf.String())
		}
	}
}

func TestRecoveryRendersGeneric500(t *testing.T) {
	var buf bytes.Buffer
	w := serve(newEngine(&buf), httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Internal server error") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "panic: unexpected") {
		t.Fatalf("panic not logged: %q", buf.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := serve(newEngine(&buf), req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("Allow-Credentials = %q", got)
	}
}

func TestCORSRejectsOtherOrigin(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "http://evil.example")

	w := serve(newEngine(&buf), req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
