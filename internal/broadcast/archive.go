package broadcast

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/pkg/batcher"
)

// ArchiveStore writes packages to the long term archive table.
type ArchiveStore interface {
	InsertArchiveDataPackages(ctx context.Context, packages []model.DataPackage) error
}

// ArchiveConfig controls archive batching.
type ArchiveConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

func (c ArchiveConfig) withDefaults() ArchiveConfig {
	if c.FlushSize <= 0 {
		c.FlushSize = 500
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 5 * time.Second
	}
	if c.FlushRPS <= 0 {
		c.FlushRPS = 2
	}
	return c
}

// ArchiveBroadcaster buffers packages and flushes them to the archive table
// in rate limited batches. It must be started before use and stopped to
// flush the tail.
type ArchiveBroadcaster struct {
	batcher *batcher.Batcher[model.DataPackage]
}

// NewArchiveBroadcaster constructs an ArchiveBroadcaster over the store.
func NewArchiveBroadcaster(logger *zap.Logger, store ArchiveStore, cfg ArchiveConfig) *ArchiveBroadcaster {
	cfg = cfg.withDefaults()
	return &ArchiveBroadcaster{
		batcher: batcher.New(
			logger.Named("archive"),
			store.InsertArchiveDataPackages,
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.FlushRPS,
		),
	}
}

// Start begins the background flushing loop.
func (b *ArchiveBroadcaster) Start(ctx context.Context) {
	b.batcher.Start(ctx)
}

// Stop flushes buffered packages and stops the loop.
func (b *ArchiveBroadcaster) Stop() {
	b.batcher.Stop()
}

// Name identifies the destination in logs and metrics.
func (b *ArchiveBroadcaster) Name() string {
	return "archive"
}

// Broadcast enqueues packages for batched archival.
func (b *ArchiveBroadcaster) Broadcast(ctx context.Context, packages []model.DataPackage) error {
	for _, pkg := range packages {
		if err := b.batcher.Add(ctx, pkg); err != nil {
			return err
		}
	}
	return nil
}
