package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

// QueryWindow returns all packages for a data service inside [from, to],
// newest first. Equal timestamps are ordered by signature so scans are
// deterministic.
func (r *Repository) QueryWindow(ctx context.Context, dataServiceID string, from, to time.Time) ([]model.DataPackage, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("query_window", dataServiceID, err, start)
	}()

	const query = `
SELECT
	data_feed_id,
	data_package_id,
	signer_address,
	timestamp_ms,
	signature,
	is_signature_valid,
	data_points
FROM data_packages
WHERE data_service_id = ? AND timestamp_ms >= ? AND timestamp_ms <= ?
ORDER BY timestamp_ms DESC, signature ASC`

	rows, err := r.conn.Query(ctx, query, dataServiceID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("query data packages window: %w", err)
	}
	return scanDataPackages(rows, dataServiceID)
}

func scanDataPackages(rows Rows, dataServiceID string) (packages []model.DataPackage, err error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			pkg       model.DataPackage
			timestamp time.Time
			points    string
		)
		if err = rows.Scan(
			&pkg.DataFeedID,
			&pkg.DataPackageID,
			&pkg.SignerAddress,
			&timestamp,
			&pkg.Signature,
			&pkg.IsSignatureValid,
			&points,
		); err != nil {
			return nil, fmt.Errorf("scan data package: %w", err)
		}
		if err = json.Unmarshal([]byte(points), &pkg.DataPoints); err != nil {
			return nil, fmt.Errorf("parse data points: %w", err)
		}
		pkg.TimestampMilliseconds = timestamp.UnixMilli()
		pkg.DataServiceID = dataServiceID
		packages = append(packages, pkg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate data packages: %w", err)
	}

	return packages, nil
}
