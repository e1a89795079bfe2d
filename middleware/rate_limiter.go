package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// visitor pairs a limiter with its last activity so stale entries can be
// evicted instead of growing the map forever.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

func newLimiterRegistry() *limiterRegistry {
	r := &limiterRegistry{visitors: make(map[string]*visitor)}
	go r.evictLoop()
	return r
}

func (r *limiterRegistry) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/200), 200)}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (r *limiterRegistry) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		for ip, v := range r.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}

var registry = newLimiterRegistry()

// RateLimitMiddleware caps each client IP at 200 requests per minute.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !registry.get(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}
