package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

// QueryExact returns all packages for a data service with exactly the given
// timestamp, used by historical reads.
func (r *Repository) QueryExact(ctx context.Context, dataServiceID string, timestamp time.Time) ([]model.DataPackage, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("query_exact", dataServiceID, err, start)
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
WHERE data_service_id = ? AND timestamp_ms = ?
ORDER BY timestamp_ms DESC, signature ASC`

	rows, err := r.conn.Query(ctx, query, dataServiceID, timestamp.UTC())
	if err != nil {
		return nil, fmt.Errorf("query data packages by timestamp: %w", err)
	}
	return scanDataPackages(rows, dataServiceID)
}
