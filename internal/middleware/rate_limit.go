package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"medbot/pkg/logger"
)

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	ips  map[string]*ipEntry
	mu   sync.Mutex
	r    rate.Limit
	b    int
	idle time.Duration
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:  make(map[string]*ipEntry),
		r:    r,
		b:    b,
		idle: 10 * time.Minute,
	}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()
	entry, exists := i.ips[ip]
	if !exists {
		entry = &ipEntry{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = entry
		i.evictIdle(now)
	}
	entry.lastSeen = now

	return entry.limiter
}

// evictIdle is called with mu held.
func (i *IPRateLimiter) evictIdle(now time.Time) {
	for ip, entry := range i.ips {
		if now.Sub(entry.lastSeen) > i.idle && !entry.lastSeen.IsZero() {
			delete(i.ips, ip)
		}
	}
}

func isHealthCheck(path string) bool {
	return path == "/health" || strings.HasSuffix(path, "/api/v1/health") || path == "/metrics"
}

func IPRateLimitMiddleware(ipLimiter *IPRateLimiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthCheck(c.Request.URL.Path) {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if !ipLimiter.GetLimiter(clientIP).Allow() {
			log.Info("rate limit blocked request", "ip", clientIP, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded",
				"message": "please try again in a few seconds",
			})
			return
		}

		c.Next()
	}
}
