package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

// SignerStatsInRange aggregates total and signature-verified package counts
// per signer over the closed interval [from, to].
func (r *Repository) SignerStatsInRange(ctx context.Context, from, to time.Time) (aggregates []model.SignerAggregate, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("signer_stats_in_range", "", err, start)
	}()

	const query = `
SELECT
	signer_address,
	count() AS total,
	countIf(is_signature_valid) AS verified
FROM data_packages
WHERE timestamp_ms >= ? AND timestamp_ms <= ?
GROUP BY signer_address`

	rows, err := r.conn.Query(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("query signer stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var agg model.SignerAggregate
		if err = rows.Scan(&agg.SignerAddress, &agg.TotalCount, &agg.VerifiedCount); err != nil {
			return nil, fmt.Errorf("scan signer stats: %w", err)
		}
		aggregates = append(aggregates, agg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signer stats: %w", err)
	}

	return aggregates, nil
}
