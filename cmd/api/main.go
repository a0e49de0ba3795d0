package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/api/middleware"
	"github.com/hoofledger/hoofledger/internal/api/server"
	"github.com/hoofledger/hoofledger/internal/api/shared/executor"
	"github.com/hoofledger/hoofledger/internal/config"
	"github.com/hoofledger/hoofledger/internal/gateway"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/messaging"
	"github.com/hoofledger/hoofledger/internal/providers/jetstream"
	"github.com/hoofledger/hoofledger/internal/ratelimit"
	"github.com/hoofledger/hoofledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting HoofLedger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// The API keeps serving records when the chain is unreachable; chain
	// endpoints answer 503 until the gateway is initialized
	var dialer adapter.EthClientDialer = adapter.NewEthClientDialer()
	if cfg.RPCLimit.RequestsPerSecond > 0 {
		var redisClient adapter.RedisClient
		if cfg.RPCLimit.RedisAddr != "" {
			redisClient = adapter.NewRedisClient(cfg.RPCLimit.RedisAddr, cfg.RPCLimit.RedisPassword, cfg.RPCLimit.RedisDB)
		}
		limiter, err := ratelimit.New(ratelimit.Config{
			Name:              string(cfg.Chain.ChainID),
			RequestsPerSecond: cfg.RPCLimit.RequestsPerSecond,
			Burst:             cfg.RPCLimit.Burst,
			KeyPrefix:         cfg.RPCLimit.KeyPrefix,
		}, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create RPC limiter", zap.Error(err))
		}
		defer func() { _ = limiter.Close() }()
		dialer = ratelimit.NewEthClientDialer(dialer, limiter)
	}
	chainGateway := gateway.New(cfg.Chain, dialer, clock, nil)
	if err := chainGateway.Init(ctx); err != nil {
		logger.WarnCtx(ctx, "Blockchain features disabled", zap.Error(err))
	}
	defer chainGateway.Close()

	// Market events go to NATS JetStream when configured
	var publisher messaging.Publisher = messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
	} else {
		logger.WarnCtx(ctx, "NATS not configured, market events will not be published")
	}
	defer publisher.Close()

	exec := executor.NewExecutor(executor.Config{
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	}, dataStore, chainGateway, publisher, clock)

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// don't use the canceled ctx
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("API server stopped")
}
