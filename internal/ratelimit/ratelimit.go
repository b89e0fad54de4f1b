package ratelimit

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/internal/logger"
)

// 100 requests per 15 minutes per client IP across the /api surface
const (
	window   = 15 * time.Minute
	requests = 100
)

// Middleware builds the /api rate limiter. With a Redis URL the counters are
// shared across instances; otherwise they live in process memory.
func Middleware(redisURL string) (gin.HandlerFunc, error) {
	store, err := newStore(redisURL)
	if err != nil {
		return nil, err
	}

	instance := limiter.New(store, limiter.Rate{
		Period: window,
		Limit:  requests,
	})

	return mgin.NewMiddleware(
		instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			apierrors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// a broken limiter store must not take the API down
			logger.ErrorErr(err, "rate limiter store failure")
			c.Next()
		}),
	), nil
}

func newStore(redisURL string) (limiter.Store, error) {
	if redisURL == "" {
		return memory.NewStore(), nil
	}

	opts, err := libredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(libredis.NewClient(opts), limiter.StoreOptions{
		Prefix: "pbxops:ratelimit",
	})

	if err != nil {
		return nil, fmt.Errorf("create redis rate-limit store: %w", err)
	}

	return store, nil
}
