// Package transport exposes the HTTP API for package ingestion and serving.
package transport

import (
	"context"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ConsensusService interface {
		GetAligned(ctx context.Context, dataServiceID string) (model.Response, error)
		GetMostRecent(ctx context.Context, dataServiceID string) (model.Response, error)
		GetAtTimestamp(ctx context.Context, dataServiceID string, timestampMilliseconds int64) (model.Response, error)
	}
	StatsService interface {
		Stats(ctx context.Context, fromMs, toMs int64) (model.StatsResponse, error)
	}
	IngestionPipeline interface {
		IngestBulk(ctx context.Context, req model.BulkRequest) (string, error)
	}
	RegistryClient interface {
		State(ctx context.Context) (registry.State, error)
	}
)
