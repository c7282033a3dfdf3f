package model

// SignerAggregate is a per-signer submission count row produced by the store.
type SignerAggregate struct {
	SignerAddress string
	TotalCount    uint64
	VerifiedCount uint64
}

// SignerStats is the enriched stats entry served per signer address.
type SignerStats struct {
	TotalCount         uint64  `json:"dataPackagesCount"`
	VerifiedCount      uint64  `json:"verifiedDataPackagesCount"`
	VerifiedPercentage float64 `json:"verifiedDataPackagesPercentage"`
	NodeName           string  `json:"nodeName"`
	DataServiceID      string  `json:"dataServiceId"`
}

// StatsResponse maps signer address to its stats entry.
type StatsResponse map[string]SignerStats
