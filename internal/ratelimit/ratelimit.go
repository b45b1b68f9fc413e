package ratelimit

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/trigonal/backend/internal/errors"
	"codeberg.org/trigonal/backend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	// key prefix shared by both stores
	keyPrefix = "trigonal:consult"

	// how often the memory store drops expired counters
	memoryCleanupInterval = time.Minute
)

// returns a ulule store: Redis when a client is given, memory otherwise
func NewStore(client *redis.Client) (limiter.Store, error) {
	if client == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix,
			CleanUpInterval: memoryCleanupInterval,
		}), nil
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   keyPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	return store, nil
}

// connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on failed connect
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return client, nil
}

// returns a per-client-IP limiter middleware for a formatted rate such as "5-M"
func Middleware(store limiter.Store, formattedRate string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formattedRate, err)
	}

	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn("rate limit reached",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)

			errors.TooManyRequests(c, "too many submissions, please try again later")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// a broken limiter store should not block intake
			logger.ErrorErr(err, "rate limiter unavailable", "path", c.Request.URL.Path)
			c.Next()
		}),
	), nil
}
