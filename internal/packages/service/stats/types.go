package stats

import (
	"context"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PackageStore interface {
		SignerStatsInRange(ctx context.Context, from, to time.Time) ([]model.SignerAggregate, error)
	}
	RegistryClient interface {
		State(ctx context.Context) (registry.State, error)
	}
)
