package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
)

const (
	maxTrackedClients = 10000
	// an idle bucket is full again long before this, so forgetting it is free
	clientIdleTTL = 5 * time.Minute
)

// RateLimiter hands out one token bucket per client IP. Buckets of clients
// that stay idle, or that fall out of the most recent maxTrackedClients,
// are forgotten.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	every    rate.Limit
	burst    int
	log      *zap.Logger
}

// NewRateLimiter allows perMinute requests per IP, with the same burst.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute int, log *zap.Logger) *RateLimiter {
	return newRateLimiter(perMinute, maxTrackedClients, clientIdleTTL, log)
}

func newRateLimiter(perMinute, size int, idle time.Duration, log *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, idle),
		every:    rate.Inf,
		burst:    1,
		log:      log,
	}
	if perMinute > 0 {
		rl.every = rate.Every(time.Minute / time.Duration(perMinute))
		rl.burst = perMinute
	}
	return rl
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters.Get(ip)
	if !ok {
		l = rate.NewLimiter(rl.every, rl.burst)
	}
	// re-adding refreshes the idle deadline
	rl.limiters.Add(ip, l)
	return l
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.limiter(ip).Allow() {
			rl.log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Demasiadas solicitudes. / Too many requests.")
			c.Abort()
			return
		}
		c.Next()
	}
}
