package model

// BroadcastPayload is the reduced package shape published to pub/sub sinks.
// Consumers re-derive identity fields from the signature on their side.
type BroadcastPayload struct {
	TimestampMilliseconds int64       `json:"timestampMilliseconds"`
	DataPoints            []DataPoint `json:"dataPoints"`
	Signature             string      `json:"signature"`
}

// ToBroadcastPayloads strips persisted packages down to the broadcast shape.
func ToBroadcastPayloads(packages []DataPackage) []BroadcastPayload {
	payloads := make([]BroadcastPayload, 0, len(packages))
	for _, p := range packages {
		payloads = append(payloads, BroadcastPayload{
			TimestampMilliseconds: p.TimestampMilliseconds,
			DataPoints:            p.DataPoints,
			Signature:             p.Signature,
		})
	}
	return payloads
}
