package consensus

import (
	"context"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PackageStore interface {
		QueryWindow(ctx context.Context, dataServiceID string, from, to time.Time) ([]model.DataPackage, error)
		QueryExact(ctx context.Context, dataServiceID string, timestamp time.Time) ([]model.DataPackage, error)
	}
	ConsensusMetrics interface {
		ObserveQuery(view string, err error, packages int, started time.Time)
		ObserveCache(view string, hit bool)
	}
)
