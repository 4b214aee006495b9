// Package cache keeps derived read data (merchant configs and walk-in baselines) in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisConfigCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisConfigCache(client redis.UniversalClient, ttl time.Duration) shared.ConfigCache {
	return &RedisConfigCache{client: client, ttl: ttl}
}

func configKey(merchantID uuid.UUID) string {
	return "config:" + merchantID.String()
}

func (c *RedisConfigCache) Get(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, bool, error) {
	raw, err := c.client.Get(ctx, configKey(merchantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read cached config")
	}
	var s policy.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode cached config")
	}
	return policy.ReconstructBookingConfig(s), true, nil
}

func (c *RedisConfigCache) Put(ctx context.Context, cfg *policy.BookingConfig) error {
	raw, err := json.Marshal(cfg.State())
	if err != nil {
		return errs.Wrap(err, "failed to encode config")
	}
	return c.client.Set(ctx, configKey(cfg.MerchantID()), raw, c.ttl).Err()
}

func (c *RedisConfigCache) Invalidate(ctx context.Context, merchantID uuid.UUID) error {
	return c.client.Del(ctx, configKey(merchantID)).Err()
}

// RedisBaselineCache namespaces entries by a per-merchant generation; bumping the generation
// drops every baseline of the merchant at once and lets old entries expire on their own.
type RedisBaselineCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisBaselineCache(client redis.UniversalClient, ttl time.Duration) shared.BaselineCache {
	return &RedisBaselineCache{client: client, ttl: ttl}
}

func generationKey(merchantID uuid.UUID) string {
	return "baseline:gen:" + merchantID.String()
}

func baselineKey(merchantID uuid.UUID, gen int64, q performance.BaselineQuery) string {
	return fmt.Sprintf("baseline:%s:%d:%s:%s:%t:%d", merchantID, gen, q.Date, q.Slot, q.IsHoliday, q.TrailingWeeks)
}

func (c *RedisBaselineCache) generation(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	raw, err := c.client.Get(ctx, generationKey(merchantID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to read baseline generation")
	}
	gen, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "corrupt baseline generation")
	}
	return gen, nil
}

func (c *RedisBaselineCache) Get(ctx context.Context, merchantID uuid.UUID, q performance.BaselineQuery) (performance.Baseline, bool, error) {
	gen, err := c.generation(ctx, merchantID)
	if err != nil {
		return performance.Baseline{}, false, err
	}
	raw, err := c.client.Get(ctx, baselineKey(merchantID, gen, q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return performance.Baseline{}, false, nil
		}
		return performance.Baseline{}, false, errs.Wrap(err, "failed to read cached baseline")
	}
	var b performance.Baseline
	if err := json.Unmarshal(raw, &b); err != nil {
		return performance.Baseline{}, false, errs.Wrap(err, "failed to decode cached baseline")
	}
	return b, true, nil
}

func (c *RedisBaselineCache) Put(ctx context.Context, merchantID uuid.UUID, q performance.BaselineQuery, b performance.Baseline) error {
	gen, err := c.generation(ctx, merchantID)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return errs.Wrap(err, "failed to encode baseline")
	}
	return c.client.Set(ctx, baselineKey(merchantID, gen, q), raw, c.ttl).Err()
}

func (c *RedisBaselineCache) Invalidate(ctx context.Context, merchantID uuid.UUID) error {
	return c.client.Incr(ctx, generationKey(merchantID)).Err()
}
