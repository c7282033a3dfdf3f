// Package main runs the data-package cache service: HTTP ingestion and
// aggregated serving over ClickHouse storage.
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
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/broadcast"
	"github.com/oraclestream/pricecache-backend/internal/evmsig"
	"github.com/oraclestream/pricecache-backend/internal/metrics"
	"github.com/oraclestream/pricecache-backend/internal/packages/repository/clickhouse"
	"github.com/oraclestream/pricecache-backend/internal/packages/service/consensus"
	"github.com/oraclestream/pricecache-backend/internal/packages/service/ingestion"
	"github.com/oraclestream/pricecache-backend/internal/packages/service/stats"
	"github.com/oraclestream/pricecache-backend/internal/registry"
	"github.com/oraclestream/pricecache-backend/internal/transport"
)

type config struct {
	HTTPAddr            string        `long:"http-addr" env:"CACHE_SERVICE_HTTP_ADDR" description:"address for the API server" default:":8080"`
	ClickhouseDSN       string        `long:"clickhouse-dsn" env:"CACHE_SERVICE_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	RedisAddr           string        `long:"redis-addr" env:"CACHE_SERVICE_REDIS_ADDR" description:"redis address for broadcasting, empty disables it"`
	RedisChannelPrefix  string        `long:"redis-channel-prefix" env:"CACHE_SERVICE_REDIS_CHANNEL_PREFIX" description:"redis channel prefix" default:"data-packages"`
	RegistryURL         string        `long:"registry-url" env:"CACHE_SERVICE_REGISTRY_URL" description:"oracle registry state URL" required:"true"`
	RegistryTTL         time.Duration `long:"registry-ttl" env:"CACHE_SERVICE_REGISTRY_TTL" description:"registry cache TTL" default:"1m"`
	AggregationWindow   time.Duration `long:"aggregation-window" env:"CACHE_SERVICE_AGGREGATION_WINDOW" description:"window for aggregated views" default:"3m"`
	ViewCacheTTL        time.Duration `long:"view-cache-ttl" env:"CACHE_SERVICE_VIEW_CACHE_TTL" description:"TTL for cached views" default:"5s"`
	EnableHistorical    bool          `long:"enable-historical" env:"CACHE_SERVICE_ENABLE_HISTORICAL" description:"serve historical timestamp lookups"`
	EnableDirectPosting bool          `long:"enable-direct-posting" env:"CACHE_SERVICE_ENABLE_DIRECT_POSTING" description:"accept bulk submissions over HTTP"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("cache service failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	registryClient, err := registry.NewHTTPClient(cfg.RegistryURL, cfg.RegistryTTL, logger.Named("registry"))
	if err != nil {
		return fmt.Errorf("init registry client: %w", err)
	}

	broadcastMetrics := metrics.NewBroadcaster()
	broadcasters := make([]ingestion.Broadcaster, 0, 2)

	archive := broadcast.NewArchiveBroadcaster(logger, repo, broadcast.ArchiveConfig{})
	archive.Start(ctx)
	defer archive.Stop()
	broadcasters = append(broadcasters, archive)

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			_ = redisClient.Close()
		}()
		broadcasters = append(broadcasters, broadcast.NewRedisBroadcaster(logger, redisClient, cfg.RedisChannelPrefix))
	}

	fanout := ingestion.NewFanout(logger.Named("fanout"), repo, broadcastMetrics, broadcasters...)
	pipeline, err := ingestion.NewPipeline(
		logger.Named("ingestion"),
		evmsig.NewRecoverer(),
		registryClient,
		fanout,
		metrics.NewIngestion(),
	)
	if err != nil {
		return fmt.Errorf("init ingestion pipeline: %w", err)
	}

	consensusService := consensus.NewService(
		logger.Named("consensus"),
		repo,
		metrics.NewConsensus(),
		consensus.Config{Window: cfg.AggregationWindow, CacheTTL: cfg.ViewCacheTTL},
	)
	statsService := stats.NewService(logger.Named("stats"), repo, registryClient)

	handler := transport.NewHandler(
		logger.Named("transport"),
		consensusService,
		statsService,
		pipeline,
		registryClient,
		transport.Config{
			EnableHistorical:    cfg.EnableHistorical,
			EnableDirectPosting: cfg.EnableDirectPosting,
		},
	)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
