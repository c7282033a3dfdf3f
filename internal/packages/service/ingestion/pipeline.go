package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

// Pipeline validates and persists bulk data-package submissions. The batch
// signature decides which node submitted the batch; per-package signatures
// only decide the stored validity flag, an invalid one never rejects the
// batch.
type Pipeline struct {
	logger    *zap.Logger
	recoverer SignatureRecoverer
	registry  RegistryClient
	fanout    *Fanout
	metrics   IngestionMetrics
}

// NewPipeline constructs a Pipeline.
func NewPipeline(
	logger *zap.Logger,
	recoverer SignatureRecoverer,
	registryClient RegistryClient,
	fanout *Fanout,
	metrics IngestionMetrics,
) (*Pipeline, error) {
	if metrics == nil {
		return nil, errors.New("ingestion metrics is required")
	}
	if fanout == nil {
		return nil, errors.New("fanout is required")
	}

	return &Pipeline{
		logger:    logger,
		recoverer: recoverer,
		registry:  registryClient,
		fanout:    fanout,
		metrics:   metrics,
	}, nil
}

// IngestBulk authenticates a bulk request, flags per-package signature
// validity and hands the resulting packages to the fanout. It returns the
// signer address the batch was attributed to.
func (p *Pipeline) IngestBulk(ctx context.Context, req model.BulkRequest) (string, error) {
	started := time.Now()
	signer, err := p.ingestBulk(ctx, req)
	p.metrics.ObserveBulk(err, len(req.DataPackages), started)
	return signer, err
}

func (p *Pipeline) ingestBulk(ctx context.Context, req model.BulkRequest) (string, error) {
	if len(req.DataPackages) == 0 {
		return "", errors.New("bulk request contains no data packages")
	}

	signer, err := p.recoverer.RecoverBatchSigner(req.DataPackages, req.RequestSignature)
	if err != nil {
		return "", fmt.Errorf("recover batch signer: %w", err)
	}

	state, err := p.registry.State(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch registry state: %w", err)
	}

	dataServiceID, err := registry.DataServiceIDForSigner(state, signer)
	if err != nil {
		return "", err
	}

	packages := p.buildPackages(req.DataPackages, signer, dataServiceID)

	if err := p.fanout.Save(ctx, packages); err != nil {
		return "", err
	}

	return signer, nil
}

func (p *Pipeline) buildPackages(received []model.ReceivedDataPackage, signer, dataServiceID string) []model.DataPackage {
	packages := make([]model.DataPackage, 0, len(received))
	invalid := 0
	for _, r := range received {
		valid := p.verifyPackageSignature(r, signer)
		if !valid {
			invalid++
		}
		packageID := r.DerivePackageID()
		packages = append(packages, model.DataPackage{
			TimestampMilliseconds: r.TimestampMilliseconds,
			Signature:             r.Signature,
			IsSignatureValid:      valid,
			DataPoints:            r.DataPoints,
			DataServiceID:         dataServiceID,
			SignerAddress:         signer,
			DataFeedID:            packageID,
			DataPackageID:         packageID,
		})
	}

	if invalid > 0 {
		p.metrics.ObserveInvalidSignatures(invalid)
		p.logger.Warn("batch contains packages with invalid signatures",
			zap.Int("invalid_count", invalid),
			zap.Int("package_count", len(received)),
			zap.String("signer_address", signer),
		)
	}

	return packages
}

func (p *Pipeline) verifyPackageSignature(r model.ReceivedDataPackage, signer string) bool {
	recovered, err := p.recoverer.RecoverPackageSigner(r)
	if err != nil {
		p.logger.Debug("package signature recovery failed", zap.Error(err))
		return false
	}
	return strings.EqualFold(recovered, signer)
}
