// Package stats reports per-signer ingestion counts over a bounded time
// range.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

// maxRangeMilliseconds caps a stats query at two hours.
const maxRangeMilliseconds = 7_200_000

// ErrRangeTooWide is returned when the requested range exceeds the cap.
var ErrRangeTooWide = errors.New("stats range exceeds the allowed maximum")

// Service aggregates per-signer package counts and enriches them with
// registry node names.
type Service struct {
	logger   *zap.Logger
	store    PackageStore
	registry RegistryClient
}

// NewService constructs a Service.
func NewService(logger *zap.Logger, store PackageStore, registryClient RegistryClient) *Service {
	return &Service{
		logger:   logger,
		store:    store,
		registry: registryClient,
	}
}

// Stats returns per-signer counts for packages stored in [fromMs, toMs].
// Signers missing from the registry are reported with unknown node metadata
// rather than dropped.
func (s *Service) Stats(ctx context.Context, fromMs, toMs int64) (model.StatsResponse, error) {
	if toMs-fromMs > maxRangeMilliseconds {
		return nil, ErrRangeTooWide
	}

	aggregates, err := s.store.SignerStatsInRange(ctx, time.UnixMilli(fromMs).UTC(), time.UnixMilli(toMs).UTC())
	if err != nil {
		return nil, fmt.Errorf("query signer stats: %w", err)
	}

	state, err := s.registry.State(ctx)
	if err != nil {
		s.logger.Warn("registry state unavailable, stats will lack node names", zap.Error(err))
		state = registry.State{}
	}

	resp := make(model.StatsResponse, len(aggregates))
	for _, agg := range aggregates {
		stat := model.SignerStats{
			TotalCount:         agg.TotalCount,
			VerifiedCount:      agg.VerifiedCount,
			VerifiedPercentage: verifiedPercentage(agg.VerifiedCount, agg.TotalCount),
			NodeName:           "unknown",
			DataServiceID:      "unknown",
		}
		if node, ok := registry.NodeByEvmAddress(state, agg.SignerAddress); ok {
			stat.NodeName = node.Name
			stat.DataServiceID = node.DataServiceID
		}
		resp[agg.SignerAddress] = stat
	}

	return resp, nil
}

func verifiedPercentage(verified, total uint64) float64 {
	if total == 0 {
		total = 1
	}
	return 100 * float64(verified) / float64(total)
}
