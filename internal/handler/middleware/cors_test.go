//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"scan-bridge/internal/handler/middleware"
	"scan-bridge/internal/pkg/config"
	"scan-bridge/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     []string{"https://content.example.com"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.POST("/api/bridge/scan", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSMiddleware(t *testing.T) {
	r := newCORSRouter()

	t.Run("preflight from the embedded content origin", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodOptions, "/api/bridge/scan", nil)
		req.Header.Set("Origin", "https://content.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "https://content.example.com",
			"Access-Control-Allow-Credentials": "true",
			"Access-Control-Max-Age":           "43200",
		})
	})

	t.Run("simple request exposes configured headers", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodPost, "/api/bridge/scan", nil)
		req.Header.Set("Origin", "https://content.example.com")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":   "https://content.example.com",
			"Access-Control-Expose-Headers": "Content-Length",
		})
	})

	t.Run("foreign origin is refused", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodPost, "/api/bridge/scan", nil)
		req.Header.Set("Origin", "https://evil.example.net")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin": "",
		})
	})
}
