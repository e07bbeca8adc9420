package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/chebellamachina/VC-LM/internal/apierror"

	"github.com/gin-gonic/gin"
)

// RateLimiter implements a sliding-window limit per client IP.
// Counters live in process memory, enough for a single-instance deployment.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go rl.purge()
	return rl
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes, intente nuevamente en unos segundos"))
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	corte := now.Add(-rl.window)

	vivos := rl.requests[ip][:0]
	for _, t := range rl.requests[ip] {
		if t.After(corte) {
			vivos = append(vivos, t)
		}
	}

	if len(vivos) >= rl.limit {
		rl.requests[ip] = vivos
		return false
	}

	rl.requests[ip] = append(vivos, now)
	return true
}

// purge drops idle IPs so the map does not grow without bound.
func (rl *RateLimiter) purge() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		corte := time.Now().Add(-rl.window)
		for ip, ts := range rl.requests {
			if len(ts) == 0 || !ts[len(ts)-1].After(corte) {
				delete(rl.requests, ip)
			}
		}
		rl.mu.Unlock()
	}
}
