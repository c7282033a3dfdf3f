// Package model defines domain models for oracle data-package caching.
package model

import "encoding/json"

// AllFeedsKey is the reserved dataFeedId marking a package that bundles
// every feed from a single node submission.
const AllFeedsKey = "___ALL_FEEDS___"

// DataPoint is a single feed observation inside a data package. The value is
// kept as raw JSON because nodes report both strings and numbers.
type DataPoint struct {
	DataFeedID string          `json:"dataFeedId"`
	Value      json.RawMessage `json:"value"`
}

// DataPackage is a signed bundle of data points persisted to ClickHouse.
// Packages are immutable once written; expiry is handled by the storage TTL.
type DataPackage struct {
	TimestampMilliseconds int64       `json:"timestampMilliseconds"`
	Signature             string      `json:"signature"`
	IsSignatureValid      bool        `json:"isSignatureValid"`
	DataPoints            []DataPoint `json:"dataPoints"`
	DataServiceID         string      `json:"dataServiceId"`
	SignerAddress         string      `json:"signerAddress"`
	DataFeedID            string      `json:"dataFeedId"`
	DataPackageID         string      `json:"dataPackageId"`
}

// ReceivedDataPackage is the submitter-side shape of a package before
// validation. The feed and package ids are optional; DerivePackageID fills
// them in deterministically.
type ReceivedDataPackage struct {
	TimestampMilliseconds int64       `json:"timestampMilliseconds"`
	Signature             string      `json:"signature"`
	DataPoints            []DataPoint `json:"dataPoints"`
	DataFeedID            string      `json:"dataFeedId,omitempty"`
	DataPackageID         string      `json:"dataPackageId,omitempty"`
}

// DerivePackageID returns the logical package identity: the explicit id when
// the submitter supplied one, the single data point's feed id for one-point
// packages, and AllFeedsKey for multi-point bundles.
func (p ReceivedDataPackage) DerivePackageID() string {
	if p.DataPackageID != "" {
		return p.DataPackageID
	}
	if p.DataFeedID != "" {
		return p.DataFeedID
	}
	if len(p.DataPoints) == 1 {
		return p.DataPoints[0].DataFeedID
	}
	return AllFeedsKey
}

// BulkRequest is a batch submission: the packages plus one batch-level
// signature covering the whole batch.
type BulkRequest struct {
	RequestSignature string                `json:"requestSignature"`
	DataPackages     []ReceivedDataPackage `json:"dataPackages"`
}

// Response maps dataFeedId to the packages selected for that feed, one per
// signer.
type Response map[string][]DataPackage
