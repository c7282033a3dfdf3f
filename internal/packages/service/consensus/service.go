package consensus

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

const (
	viewAligned    = "aligned"
	viewMostRecent = "most-recent"
)

// Config controls the aggregation window and the view cache.
type Config struct {
	Window    time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

func (c Config) withDefaults() Config {
	if c.Window <= 0 {
		c.Window = 3 * time.Minute
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 5 * time.Second
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 128
	}
	return c
}

// Service serves aggregated package views over the recent storage window.
type Service struct {
	logger  *zap.Logger
	store   PackageStore
	metrics ConsensusMetrics
	cache   *responseCache
	window  time.Duration
	now     func() time.Time
}

// NewService constructs a Service.
func NewService(logger *zap.Logger, store PackageStore, metrics ConsensusMetrics, cfg Config) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		logger:  logger,
		store:   store,
		metrics: metrics,
		cache:   newResponseCache(cfg.CacheSize, cfg.CacheTTL),
		window:  cfg.Window,
		now:     time.Now,
	}
}

// GetAligned returns the timestamp-aligned view for a data service.
func (s *Service) GetAligned(ctx context.Context, dataServiceID string) (model.Response, error) {
	return s.cached(ctx, viewAligned, dataServiceID, alignedResponse)
}

// GetMostRecent returns the per-pair most recent view for a data service.
func (s *Service) GetMostRecent(ctx context.Context, dataServiceID string) (model.Response, error) {
	return s.cached(ctx, viewMostRecent, dataServiceID, mostRecentResponse)
}

// GetAtTimestamp returns packages stored at exactly the given timestamp.
// Historical lookups bypass the cache.
func (s *Service) GetAtTimestamp(ctx context.Context, dataServiceID string, timestampMilliseconds int64) (model.Response, error) {
	started := time.Now()
	packages, err := s.store.QueryExact(ctx, dataServiceID, time.UnixMilli(timestampMilliseconds).UTC())
	s.metrics.ObserveQuery(viewMostRecent, err, len(packages), started)
	if err != nil {
		return nil, fmt.Errorf("query packages at timestamp: %w", err)
	}
	return mostRecentResponse(packages), nil
}

func (s *Service) cached(
	ctx context.Context,
	view, dataServiceID string,
	aggregate func([]model.DataPackage) model.Response,
) (model.Response, error) {
	key := view + "/" + dataServiceID
	resp, hit, err := s.cache.getOrCompute(key, func() (model.Response, error) {
		return s.compute(ctx, view, dataServiceID, aggregate)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveCache(view, hit)
	return resp, nil
}

func (s *Service) compute(
	ctx context.Context,
	view, dataServiceID string,
	aggregate func([]model.DataPackage) model.Response,
) (model.Response, error) {
	now := s.now().UTC()
	started := time.Now()
	packages, err := s.store.QueryWindow(ctx, dataServiceID, now.Add(-s.window), now)
	s.metrics.ObserveQuery(view, err, len(packages), started)
	if err != nil {
		return nil, fmt.Errorf("query package window: %w", err)
	}

	if len(packages) == 0 {
		s.logger.Debug("no packages in window", zap.String("data_service_id", dataServiceID), zap.String("view", view))
	}

	return aggregate(packages), nil
}
