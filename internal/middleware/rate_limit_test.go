package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"medbot/pkg/logger"
)

func newLimitedRouter(r rate.Limit, b int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(IPRateLimitMiddleware(NewIPRateLimiter(r, b), logger.Nop()))
	router.GET("/api/v1/drugs", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func do(router http.Handler, path, ip string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestIPRateLimitMiddleware(t *testing.T) {
	router := newLimitedRouter(rate.Limit(0.001), 2)

	assert.Equal(t, http.StatusOK, do(router, "/api/v1/drugs", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, do(router, "/api/v1/drugs", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do(router, "/api/v1/drugs", "10.0.0.1"))

	// separate bucket per IP
	assert.Equal(t, http.StatusOK, do(router, "/api/v1/drugs", "10.0.0.2"))

	// health checks are never limited
	assert.Equal(t, http.StatusOK, do(router, "/api/v1/health", "10.0.0.1"))
}
