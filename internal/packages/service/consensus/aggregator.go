package consensus

import "github.com/oraclestream/pricecache-backend/internal/packages/model"

// alignedResponse selects the single timestamp most nodes agree on and
// returns its packages, one per (signer, feed) pair. Groups are ranked by
// distinct pair count; ties go to the most recent timestamp.
func alignedResponse(packages []model.DataPackage) model.Response {
	if len(packages) == 0 {
		return model.Response{}
	}

	groups := groupByTimestamp(packages)
	rankGroups(groups)

	return byFeed(selectPerSignerAndFeed(groups[0].packages))
}

// mostRecentResponse keeps the newest package per (signer, feed) pair
// regardless of timestamp alignment. The input must already be sorted newest
// first with a deterministic tie-break, which the store query guarantees.
func mostRecentResponse(packages []model.DataPackage) model.Response {
	if len(packages) == 0 {
		return model.Response{}
	}

	return byFeed(selectPerSignerAndFeed(packages))
}
