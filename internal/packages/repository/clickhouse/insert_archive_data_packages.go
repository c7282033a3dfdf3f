package clickhouse

import (
	"context"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

// InsertArchiveDataPackages stores packages in the cold archive table, which
// has no storage TTL.
func (r *Repository) InsertArchiveDataPackages(ctx context.Context, packages []model.DataPackage) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_archive_data_packages", firstDataServiceID(packages), err, start)
	}()

	err = r.insert(ctx, insertArchiveDataPackagesQuery, packages)
	return err
}

const insertArchiveDataPackagesQuery = `
INSERT INTO data_packages_archive (
	data_service_id,
	data_feed_id,
	data_package_id,
	signer_address,
	timestamp_ms,
	signature,
	is_signature_valid,
	data_points
) VALUES`
