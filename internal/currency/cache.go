package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wantly_backend/internal/logger"
)

const cacheKey = "currency:rates"

// RateCache is the time-boxed snapshot store. Reads go to Redis first; on a
// miss (or expired entry) the ECB feed is fetched and the result cached for
// the configured TTL, so every matching pass within the window observes the
// same snapshot.
type RateCache struct {
	rdb    *redis.Client
	client *ECBClient
	ttl    time.Duration
}

func NewRateCache(rdb *redis.Client, client *ECBClient, ttl time.Duration) *RateCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RateCache{rdb: rdb, client: client, ttl: ttl}
}

// Snapshot returns the cached snapshot, refreshing from the feed when the
// cache is empty. Implements RateSource.
func (c *RateCache) Snapshot(ctx context.Context) (*Snapshot, error) {
	if c.rdb == nil {
		return c.Refresh(ctx)
	}

	raw, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var snapshot Snapshot
		if jsonErr := json.Unmarshal(raw, &snapshot); jsonErr == nil {
			return &snapshot, nil
		}
		// Corrupt cache entry; fall through to a refresh.
		logger.Warn("discarding unreadable rate snapshot from cache")
	} else if err != redis.Nil {
		// Redis being down is not fatal as long as the feed answers.
		logger.WithError(err).Warn("rate cache unavailable, fetching feed directly")
	}

	return c.Refresh(ctx)
}

// Refresh fetches the feed and replaces the cached snapshot.
func (c *RateCache) Refresh(ctx context.Context) (*Snapshot, error) {
	rates, err := c.client.FetchRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh rate snapshot: %w", err)
	}

	snapshot := NewSnapshot(rates, time.Now().UTC())

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode rate snapshot: %w", err)
	}

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, cacheKey, raw, c.ttl).Err(); err != nil {
			logger.WithError(err).Warn("failed to cache rate snapshot")
		}
	}

	return snapshot, nil
}
