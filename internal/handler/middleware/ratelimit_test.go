//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"group-booking-arbiter/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rl *MerchantRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/m/:merchantId/process", func(c *gin.Context) {
		if id, err := uuid.Parse(c.Param("merchantId")); err == nil {
			c.Set(ctxMerchantIDKey, id)
		}
		c.Next()
	}, rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, merchantID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/m/"+merchantID+"/process", nil))
	return w
}

func TestMerchantRateLimiter_Limit(t *testing.T) {
	t.Run("rejects once the merchant's burst is spent", func(t *testing.T) {
		rl := NewMerchantRateLimiter(config.RateLimitConfig{ProcessPerSecond: 0.001, ProcessBurst: 2})
		r := newLimitedRouter(rl)
		merchant := uuid.NewString()

		assert.Equal(t, http.StatusOK, hit(r, merchant).Code)
		assert.Equal(t, http.StatusOK, hit(r, merchant).Code)

		w := hit(r, merchant)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1000", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("merchants have independent buckets", func(t *testing.T) {
		rl := NewMerchantRateLimiter(config.RateLimitConfig{ProcessPerSecond: 0.001, ProcessBurst: 1})
		r := newLimitedRouter(rl)
		noisy, quiet := uuid.NewString(), uuid.NewString()

		assert.Equal(t, http.StatusOK, hit(r, noisy).Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(r, noisy).Code)
		assert.Equal(t, http.StatusOK, hit(r, quiet).Code)
	})

	t.Run("rejects requests without a resolved merchant", func(t *testing.T) {
		rl := NewMerchantRateLimiter(config.RateLimitConfig{ProcessPerSecond: 1, ProcessBurst: 1})
		r := newLimitedRouter(rl)

		assert.Equal(t, http.StatusBadRequest, hit(r, "not-a-uuid").Code)
	})

	t.Run("non-positive burst still admits one request", func(t *testing.T) {
		rl := NewMerchantRateLimiter(config.RateLimitConfig{ProcessPerSecond: 0.001, ProcessBurst: 0})
		r := newLimitedRouter(rl)
		merchant := uuid.NewString()

		assert.Equal(t, http.StatusOK, hit(r, merchant).Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(r, merchant).Code)
	})
}

func TestMerchantRateLimiter_SweepsIdleMerchants(t *testing.T) {
	rl := NewMerchantRateLimiter(config.RateLimitConfig{ProcessPerSecond: 1, ProcessBurst: 1})
	clock := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	idle, active := uuid.New(), uuid.New()
	rl.getLimiter(idle)
	rl.getLimiter(active)
	require.Len(t, rl.merchants, 2)

	clock = clock.Add(limiterIdleTTL - time.Minute)
	rl.getLimiter(active)

	clock = clock.Add(2 * time.Minute)
	rl.getLimiter(active)

	assert.Len(t, rl.merchants, 1)
	assert.Contains(t, rl.merchants, active)
}
