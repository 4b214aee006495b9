package middleware

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"group-booking-arbiter/internal/handler/httperr"
	"group-booking-arbiter/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

var errRateLimited = errors.New("merchant rate limit exceeded")

type merchantLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MerchantRateLimiter keeps one token bucket per merchant so a noisy merchant cannot starve
// the others.
type MerchantRateLimiter struct {
	limit     rate.Limit
	burst     int
	mu        sync.Mutex
	merchants map[uuid.UUID]*merchantLimiter
	lastSweep time.Time
	now       func() time.Time
}

func NewMerchantRateLimiter(cfg config.RateLimitConfig) *MerchantRateLimiter {
	burst := cfg.ProcessBurst
	if burst <= 0 {
		burst = 1
	}
	return &MerchantRateLimiter{
		limit:     rate.Limit(cfg.ProcessPerSecond),
		burst:     burst,
		merchants: make(map[uuid.UUID]*merchantLimiter),
		now:       time.Now,
	}
}

func (rl *MerchantRateLimiter) getLimiter(merchantID uuid.UUID) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	if m, exists := rl.merchants[merchantID]; exists {
		m.lastSeen = now
		return m.limiter
	}

	m := &merchantLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: now}
	rl.merchants[merchantID] = m
	return m.limiter
}

// sweep drops limiters of merchants idle for longer than limiterIdleTTL. Caller holds mu.
func (rl *MerchantRateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterIdleTTL {
		return
	}
	for id, m := range rl.merchants {
		if now.Sub(m.lastSeen) > limiterIdleTTL {
			delete(rl.merchants, id)
		}
	}
	rl.lastSweep = now
}

// Limit must run after AuthMiddleware.RequireMerchant.
func (rl *MerchantRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantID, ok := GetMerchantID(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidMerchant, "Invalid merchant id", nil)
			return
		}

		limiter := rl.getLimiter(merchantID)
		if !limiter.Allow() {
			retry := 0
			if rl.limit > 0 {
				retry = max(1, int(1/float64(rl.limit)))
			}
			httperr.AbortRateLimited(c, errRateLimited, retry)
			return
		}

		c.Next()
	}
}
