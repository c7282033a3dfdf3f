package ingestion

import (
	"context"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PackageStore interface {
		InsertDataPackages(ctx context.Context, packages []model.DataPackage) error
	}
	RegistryClient interface {
		State(ctx context.Context) (registry.State, error)
	}
	SignatureRecoverer interface {
		RecoverBatchSigner(packages []model.ReceivedDataPackage, requestSignature string) (string, error)
		RecoverPackageSigner(pkg model.ReceivedDataPackage) (string, error)
	}
	Broadcaster interface {
		Name() string
		Broadcast(ctx context.Context, packages []model.DataPackage) error
	}
	IngestionMetrics interface {
		ObserveBulk(err error, packages int, started time.Time)
		ObserveInvalidSignatures(count int)
	}
	BroadcastMetrics interface {
		Observe(destination string, err error, packages int, started time.Time)
	}
)
