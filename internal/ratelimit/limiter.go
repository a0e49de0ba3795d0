package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/logger"
)

// Limiter paces calls to a rate-limited upstream
type Limiter interface {
	// Wait blocks until a token is available or ctx is done
	Wait(ctx context.Context) error

	// Close stops the health check and releases the Redis connection
	Close() error
}

// Config holds the limits of one upstream
type Config struct {
	// Name identifies the upstream in the shared Redis key
	Name              string
	RequestsPerSecond int
	Burst             int
	KeyPrefix         string

	// LocalFallbackMultiplier scales the local rate while Redis is down,
	// since every replica falls back at the same time
	LocalFallbackMultiplier float64
	HealthCheckInterval     time.Duration
}

type limiter struct {
	cfg   Config
	key   string
	clock adapter.Clock

	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	preFilter   *rate.Limiter
	local       *rate.Limiter

	redisAvailable atomic.Bool
	done           chan struct{}
	closeOnce      sync.Once
}

// New creates a limiter. With a nil Redis client the budget is enforced per
// process; otherwise it is shared through Redis and enforced locally at a
// reduced rate while Redis is unreachable.
func New(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid rate limit configuration: %w", err)
	}

	l := &limiter{
		cfg:   cfg,
		key:   cfg.KeyPrefix + cfg.Name,
		clock: clock,
		redis: rc,
		done:  make(chan struct{}),
	}

	if rc == nil {
		l.local = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
		logger.Info("RPC limiter initialized",
			zap.String("name", cfg.Name),
			zap.Int("requests_per_second", cfg.RequestsPerSecond))
		return l, nil
	}

	localRate := max(float64(cfg.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0)
	l.local = rate.NewLimiter(rate.Limit(localRate), cfg.Burst)
	// keeps a busy process from hammering Redis for tokens it cannot get
	l.preFilter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	l.distributed = rc.NewRateLimiter()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, using local RPC limit", zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}

	go l.monitorRedisHealth()

	logger.Info("RPC limiter initialized",
		zap.String("name", cfg.Name),
		zap.String("key", l.key),
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Bool("redis", l.redisAvailable.Load()))
	return l, nil
}

func (l *limiter) Wait(ctx context.Context) error {
	for l.redis != nil && l.redisAvailable.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}

		allowed, retryAfter, err := l.tryDistributed(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.redisAvailable.Store(false)
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.String("name", l.cfg.Name), zap.Error(err))
			break
		}
		if allowed {
			return nil
		}

		// 50-150% of retryAfter spreads out replicas retrying together
		wait := time.Duration(float64(max(retryAfter, 10*time.Millisecond)) * (0.5 + rand.Float64())) //nolint:gosec,G404
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(wait):
		}
	}

	return l.local.Wait(ctx)
}

// tryDistributed returns whether a token was taken and, if not, how long to back off
func (l *limiter) tryDistributed(ctx context.Context) (bool, time.Duration, error) {
	if err := l.preFilter.Wait(ctx); err != nil {
		return false, 0, err
	}

	limit := redis_rate.PerSecond(l.cfg.RequestsPerSecond)
	limit.Burst = l.cfg.Burst
	res, err := l.distributed.Allow(ctx, l.key, limit)
	if err != nil {
		return false, 0, err
	}
	if res.Allowed == 0 {
		logger.DebugCtx(ctx, "RPC token unavailable, waiting",
			zap.String("name", l.cfg.Name),
			zap.Duration("retry_after", res.RetryAfter))
		return false, res.RetryAfter, nil
	}
	return true, 0, nil
}

func (l *limiter) monitorRedisHealth() {
	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(l.cfg.HealthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		wasAvailable := l.redisAvailable.Swap(err == nil)
		if !wasAvailable && err == nil {
			logger.Info("Redis connection restored, using shared RPC limit", zap.String("name", l.cfg.Name))
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		if l.redis != nil {
			err = l.redis.Close()
		}
	})
	return err
}

func validateConfig(cfg *Config) error {
	if cfg.Name == "" {
		return errors.New("name is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		return errors.New("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "hoofledger:rpc:"
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 10 * time.Second
	}
	return nil
}
