package ingestion

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/pkg/workerpool"
)

// Fanout persists packages to the mandatory store and then notifies every
// registered broadcaster. The store write is the only one that can fail the
// request; broadcaster failures are logged and absorbed.
type Fanout struct {
	logger       *zap.Logger
	store        PackageStore
	broadcasters []Broadcaster
	metrics      BroadcastMetrics
	workerCount  int
}

// NewFanout constructs a Fanout over the given store and broadcasters.
func NewFanout(logger *zap.Logger, store PackageStore, metrics BroadcastMetrics, broadcasters ...Broadcaster) *Fanout {
	return &Fanout{
		logger:       logger,
		store:        store,
		broadcasters: broadcasters,
		metrics:      metrics,
		workerCount:  defaultBroadcastWorkers,
	}
}

// Save writes packages to the store and broadcasts them. All broadcasters
// are attempted even when some fail.
func (f *Fanout) Save(ctx context.Context, packages []model.DataPackage) error {
	if len(packages) == 0 {
		return nil
	}

	if err := f.store.InsertDataPackages(ctx, packages); err != nil {
		return fmt.Errorf("insert data packages: %w", err)
	}

	results := workerpool.Settle(ctx, f.workerCount, f.broadcasters, func(ctx context.Context, b Broadcaster) error {
		started := time.Now()
		err := b.Broadcast(ctx, packages)
		if f.metrics != nil {
			f.metrics.Observe(b.Name(), err, len(packages), started)
		}
		return err
	})

	for i, err := range results {
		if err != nil {
			f.logger.Warn("broadcast failed",
				zap.String("broadcaster", f.broadcasters[i].Name()),
				zap.Int("package_count", len(packages)),
				zap.String("signer_address", packages[0].SignerAddress),
				zap.Error(err),
			)
		}
	}

	return nil
}
