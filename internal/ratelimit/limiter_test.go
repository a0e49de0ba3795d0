package ratelimit_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/mocks"
	"github.com/hoofledger/hoofledger/internal/ratelimit"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testLimiterMocks struct {
	ctrl        *gomock.Controller
	redis       *mocks.MockRedisClient
	distributed *mocks.MockRedisRateLimiter
	clock       *mocks.MockClock
	never       chan time.Time
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	tm := &testLimiterMocks{
		ctrl:        ctrl,
		redis:       mocks.NewMockRedisClient(ctrl),
		distributed: mocks.NewMockRedisRateLimiter(ctrl),
		clock:       mocks.NewMockClock(ctrl),
		never:       make(chan time.Time),
	}
	tm.redis.EXPECT().NewRateLimiter().Return(tm.distributed).AnyTimes()
	return tm
}

func tearDownTestLimiter(tm *testLimiterMocks) {
	tm.ctrl.Finish()
}

func testConfig() ratelimit.Config {
	return ratelimit.Config{
		Name:                "eip155:534351",
		RequestsPerSecond:   1000,
		HealthCheckInterval: time.Hour,
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  ratelimit.Config
	}{
		{name: "missing name", cfg: ratelimit.Config{RequestsPerSecond: 5}},
		{name: "zero rate", cfg: ratelimit.Config{Name: "rpc"}},
		{name: "negative rate", cfg: ratelimit.Config{Name: "rpc", RequestsPerSecond: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ratelimit.New(tt.cfg, nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid rate limit configuration")
		})
	}
}

func TestWait_LocalOnly(t *testing.T) {
	l, err := ratelimit.New(ratelimit.Config{Name: "rpc", RequestsPerSecond: 1, Burst: 1}, nil, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	require.NoError(t, l.Wait(context.Background()))

	// the bucket is empty and the next token is a second away
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx))
}

func TestWait_Distributed(t *testing.T) {
	tm := setupTestLimiter(t)
	defer tearDownTestLimiter(tm)

	tm.redis.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusResult("PONG", nil))
	tm.clock.EXPECT().After(time.Hour).Return((<-chan time.Time)(tm.never)).AnyTimes()
	tm.distributed.EXPECT().
		Allow(gomock.Any(), "hoofledger:rpc:eip155:534351", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, limit redis_rate.Limit) (*redis_rate.Result, error) {
			assert.Equal(t, 1000, limit.Rate)
			assert.Equal(t, time.Second, limit.Period)
			return &redis_rate.Result{Allowed: 1, Remaining: 999}, nil
		})
	tm.redis.EXPECT().Close().Return(nil)

	l, err := ratelimit.New(testConfig(), tm.redis, tm.clock)
	require.NoError(t, err)

	require.NoError(t, l.Wait(context.Background()))
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")
}

func TestWait_DistributedBackoff(t *testing.T) {
	tm := setupTestLimiter(t)
	defer tearDownTestLimiter(tm)

	tm.redis.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusResult("PONG", nil))
	tm.clock.EXPECT().After(time.Hour).Return((<-chan time.Time)(tm.never)).AnyTimes()

	fired := make(chan time.Time, 1)
	fired <- time.Now()
	gomock.InOrder(
		tm.distributed.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 200 * time.Millisecond}, nil),
		tm.clock.EXPECT().
			After(gomock.Any()).
			DoAndReturn(func(d time.Duration) <-chan time.Time {
				assert.GreaterOrEqual(t, d, 100*time.Millisecond)
				assert.Less(t, d, 300*time.Millisecond)
				return fired
			}),
		tm.distributed.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)
	tm.redis.EXPECT().Close().Return(nil)

	l, err := ratelimit.New(testConfig(), tm.redis, tm.clock)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Wait(context.Background()))
}

func TestWait_RedisErrorFallsBackToLocal(t *testing.T) {
	tm := setupTestLimiter(t)
	defer tearDownTestLimiter(tm)

	tm.redis.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusResult("PONG", nil))
	tm.clock.EXPECT().After(time.Hour).Return((<-chan time.Time)(tm.never)).AnyTimes()
	tm.distributed.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).Times(1)
	tm.redis.EXPECT().Close().Return(nil)

	l, err := ratelimit.New(testConfig(), tm.redis, tm.clock)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Wait(context.Background()))
	// Redis stays marked down until the health check sees it again
	require.NoError(t, l.Wait(context.Background()))
}

func TestWait_RedisDownAtStart(t *testing.T) {
	tm := setupTestLimiter(t)
	defer tearDownTestLimiter(tm)

	tm.redis.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusResult("", errors.New("dial tcp: connection refused")))
	tm.clock.EXPECT().After(time.Hour).Return((<-chan time.Time)(tm.never)).AnyTimes()
	tm.distributed.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	tm.redis.EXPECT().Close().Return(nil)

	l, err := ratelimit.New(testConfig(), tm.redis, tm.clock)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Wait(context.Background()))
}

func TestWait_CanceledContext(t *testing.T) {
	tm := setupTestLimiter(t)
	defer tearDownTestLimiter(tm)

	tm.redis.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusResult("PONG", nil))
	tm.clock.EXPECT().After(time.Hour).Return((<-chan time.Time)(tm.never)).AnyTimes()
	tm.distributed.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	tm.redis.EXPECT().Close().Return(nil)

	l, err := ratelimit.New(testConfig(), tm.redis, tm.clock)
	require.NoError(t, err)
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)
}

func TestEthClientDialer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockEthClientDialer(ctrl)
	client := mocks.NewMockEthClient(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), "http://localhost:8545").Return(client, nil)
	client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(534351), nil)
	client.EXPECT().Close()

	l, err := ratelimit.New(ratelimit.Config{Name: "rpc", RequestsPerSecond: 1, Burst: 1}, nil, nil)
	require.NoError(t, err)

	throttled, err := ratelimit.NewEthClientDialer(dialer, l).Dial(context.Background(), "http://localhost:8545")
	require.NoError(t, err)
	defer throttled.Close()

	id, err := throttled.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(534351), id.Int64())

	// the only token is spent; the call never reaches the endpoint
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = throttled.BlockNumber(ctx)
	assert.Error(t, err)
}

func TestEthClientDialer_DialError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockEthClientDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(nil, errors.New("no such host"))

	l, err := ratelimit.New(ratelimit.Config{Name: "rpc", RequestsPerSecond: 1}, nil, nil)
	require.NoError(t, err)

	_, err = ratelimit.NewEthClientDialer(dialer, l).Dial(context.Background(), "http://nowhere")
	assert.EqualError(t, err, "no such host")
}
