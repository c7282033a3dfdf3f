package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

// InsertDataPackages stores a validated batch in the data_packages table as
// one batch operation.
func (r *Repository) InsertDataPackages(ctx context.Context, packages []model.DataPackage) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_data_packages", firstDataServiceID(packages), err, start)
	}()

	err = r.insert(ctx, insertDataPackagesQuery, packages)
	return err
}

const insertDataPackagesQuery = `
INSERT INTO data_packages (
	data_service_id,
	data_feed_id,
	data_package_id,
	signer_address,
	timestamp_ms,
	signature,
	is_signature_valid,
	data_points
) VALUES`

func (r *Repository) insert(ctx context.Context, query string, packages []model.DataPackage) error {
	if len(packages) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare data packages batch: %w", err)
	}

	for _, pkg := range packages {
		points, marshalErr := json.Marshal(pkg.DataPoints)
		if marshalErr != nil {
			return fmt.Errorf("serialize data points: %w", marshalErr)
		}
		if err = batch.Append(
			pkg.DataServiceID,
			pkg.DataFeedID,
			pkg.DataPackageID,
			pkg.SignerAddress,
			time.UnixMilli(pkg.TimestampMilliseconds).UTC(),
			pkg.Signature,
			pkg.IsSignatureValid,
			string(points),
		); err != nil {
			return fmt.Errorf("append data package: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert data packages: %w", err)
	}
	return nil
}

func firstDataServiceID(packages []model.DataPackage) string {
	if len(packages) == 0 {
		return ""
	}
	return packages[0].DataServiceID
}
