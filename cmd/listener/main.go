// Package main runs the pub/sub listener: an alternative intake that
// subscribes to node broadcast channels and persists verified packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/broadcast"
	"github.com/oraclestream/pricecache-backend/internal/evmsig"
	"github.com/oraclestream/pricecache-backend/internal/metrics"
	"github.com/oraclestream/pricecache-backend/internal/packages/repository/clickhouse"
	"github.com/oraclestream/pricecache-backend/internal/packages/service/ingestion"
	"github.com/oraclestream/pricecache-backend/internal/packages/service/listener"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

type config struct {
	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"LISTENER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	RedisAddr          string        `long:"redis-addr" env:"LISTENER_REDIS_ADDR" description:"redis address to subscribe on" required:"true"`
	RedisChannelPrefix string        `long:"redis-channel-prefix" env:"LISTENER_REDIS_CHANNEL_PREFIX" description:"redis channel prefix" default:"data-packages"`
	RegistryURL        string        `long:"registry-url" env:"LISTENER_REGISTRY_URL" description:"oracle registry state URL" required:"true"`
	RegistryTTL        time.Duration `long:"registry-ttl" env:"LISTENER_REGISTRY_TTL" description:"registry cache TTL" default:"1m"`
	MetricsAddr        string        `long:"metrics-addr" env:"LISTENER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("listener failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	registryClient, err := registry.NewHTTPClient(cfg.RegistryURL, cfg.RegistryTTL, logger.Named("registry"))
	if err != nil {
		return fmt.Errorf("init registry client: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() {
		_ = redisClient.Close()
	}()

	// Listened packages are archived but never re-published to redis.
	archive := broadcast.NewArchiveBroadcaster(logger, repo, broadcast.ArchiveConfig{})
	archive.Start(ctx)
	defer archive.Stop()

	fanout := ingestion.NewFanout(logger.Named("fanout"), repo, metrics.NewBroadcaster(), archive)

	svc, err := listener.NewService(
		logger.Named("listener"),
		listener.RedisSubscriber{Client: redisClient},
		fanout,
		registryClient,
		evmsig.NewRecoverer(),
		metrics.NewListener(),
		cfg.RedisChannelPrefix,
	)
	if err != nil {
		return fmt.Errorf("init listener: %w", err)
	}

	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
