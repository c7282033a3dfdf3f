package consensus

import (
	"sort"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

type timestampGroup struct {
	timestamp int64
	packages  []model.DataPackage
}

// groupByTimestamp splits packages into per-timestamp groups, preserving the
// input order inside each group.
func groupByTimestamp(packages []model.DataPackage) []timestampGroup {
	index := make(map[int64]int)
	groups := make([]timestampGroup, 0)
	for _, pkg := range packages {
		i, ok := index[pkg.TimestampMilliseconds]
		if !ok {
			i = len(groups)
			index[pkg.TimestampMilliseconds] = i
			groups = append(groups, timestampGroup{timestamp: pkg.TimestampMilliseconds})
		}
		groups[i].packages = append(groups[i].packages, pkg)
	}
	return groups
}

type signerFeedKey struct {
	signer string
	feed   string
}

// uniquePairCount counts distinct (signer, feed) pairs in a group.
func uniquePairCount(packages []model.DataPackage) int {
	seen := make(map[signerFeedKey]struct{}, len(packages))
	for _, pkg := range packages {
		seen[signerFeedKey{signer: pkg.SignerAddress, feed: pkg.DataFeedID}] = struct{}{}
	}
	return len(seen)
}

// rankGroups orders groups by unique pair count descending, breaking ties
// with the later timestamp. The sort is stable so equal groups keep their
// input order.
func rankGroups(groups []timestampGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		ci, cj := uniquePairCount(groups[i].packages), uniquePairCount(groups[j].packages)
		if ci != cj {
			return ci > cj
		}
		return groups[i].timestamp > groups[j].timestamp
	})
}

// selectPerSignerAndFeed keeps one package per (signer, feed) pair. The first
// occurrence wins unless a later package for the same pair bundles strictly
// more data points, in which case the bigger bundle replaces it.
func selectPerSignerAndFeed(packages []model.DataPackage) []model.DataPackage {
	kept := make([]model.DataPackage, 0, len(packages))
	position := make(map[signerFeedKey]int, len(packages))
	for _, pkg := range packages {
		key := signerFeedKey{signer: pkg.SignerAddress, feed: pkg.DataFeedID}
		if i, ok := position[key]; ok {
			if len(pkg.DataPoints) > len(kept[i].DataPoints) {
				kept[i] = pkg
			}
			continue
		}
		position[key] = len(kept)
		kept = append(kept, pkg)
	}
	return kept
}

// byFeed arranges the selected packages into the response shape.
func byFeed(packages []model.DataPackage) model.Response {
	resp := make(model.Response, len(packages))
	for _, pkg := range packages {
		resp[pkg.DataFeedID] = append(resp[pkg.DataFeedID], pkg)
	}
	return resp
}
