package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"wantly_backend/internal/logger"
	"wantly_backend/internal/models"
	"wantly_backend/internal/repositories"
)

// RateLimiter keeps per-route request counters in Redis. When Redis is
// unreachable the limiter fails open.
type RateLimiter struct {
	rdb     *redis.Client
	logRepo repositories.LogRepository
}

func NewRateLimiter(rdb *redis.Client, logRepo repositories.LogRepository) *RateLimiter {
	return &RateLimiter{rdb: rdb, logRepo: logRepo}
}

// Limit allows at most limit requests per client IP within window.
func (rl *RateLimiter) Limit(name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.WithError(err).Warn("Rate limiter unavailable, allowing request", "route", name)
			c.Next()
			return
		}
		if count == 1 {
			if err := rl.rdb.Expire(ctx, key, window).Err(); err != nil {
				logger.WithError(err).Warn("Failed to set rate limit window", "route", name)
			}
		}

		if count > int64(limit) {
			ip := c.ClientIP()
			route := name
			go func() {
				entry := &models.ActivityLog{
					Type:    models.LogRateLimitHit,
					IP:      &ip,
					Content: &route,
				}
				if err := rl.logRepo.Create(entry); err != nil {
					logger.WithError(err).Warn("Failed to record rate limit hit")
				}
			}()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			return
		}
		c.Next()
	}
}
