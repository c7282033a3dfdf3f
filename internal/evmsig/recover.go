// Package evmsig recovers EVM-style signer addresses from secp256k1
// signatures over data packages.
package evmsig

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

const signatureLength = 65

// Recoverer implements batch- and package-level signer recovery.
type Recoverer struct{}

func NewRecoverer() Recoverer {
	return Recoverer{}
}

// RecoverBatchSigner recovers the address that signed a whole bulk
// submission. The signed message is the canonical JSON of the submitted
// packages.
func (Recoverer) RecoverBatchSigner(packages []model.ReceivedDataPackage, requestSignature string) (string, error) {
	message, err := json.Marshal(packages)
	if err != nil {
		return "", fmt.Errorf("serialize batch for recovery: %w", err)
	}
	return recoverAddress(message, requestSignature)
}

// RecoverPackageSigner recovers the address that produced one package from
// the package's own signature over its data points and timestamp.
func (Recoverer) RecoverPackageSigner(pkg model.ReceivedDataPackage) (string, error) {
	message, err := signableBytes(pkg)
	if err != nil {
		return "", err
	}
	return recoverAddress(message, pkg.Signature)
}

// signablePackage is the subset of a package covered by its own signature.
type signablePackage struct {
	TimestampMilliseconds int64             `json:"timestampMilliseconds"`
	DataPoints            []model.DataPoint `json:"dataPoints"`
}

func signableBytes(pkg model.ReceivedDataPackage) ([]byte, error) {
	message, err := json.Marshal(signablePackage{
		TimestampMilliseconds: pkg.TimestampMilliseconds,
		DataPoints:            pkg.DataPoints,
	})
	if err != nil {
		return nil, fmt.Errorf("serialize package for recovery: %w", err)
	}
	return message, nil
}

func recoverAddress(message []byte, signature string) (string, error) {
	compact, err := decodeSignature(signature)
	if err != nil {
		return "", err
	}

	pub, _, err := ecdsa.RecoverCompact(compact, keccak256(message))
	if err != nil {
		return "", fmt.Errorf("recover public key: %w", err)
	}
	return addressFromPublicKey(pub), nil
}

// decodeSignature parses a 65-byte hex signature and normalizes it to the
// compact [v, r, s] layout expected by RecoverCompact. Both [r, s, v]
// (EVM ordering) and [v, r, s] inputs are accepted.
func decodeSignature(signature string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode signature hex: %w", err)
	}
	if len(raw) != signatureLength {
		return nil, fmt.Errorf("signature must be %d bytes, got %d", signatureLength, len(raw))
	}

	if v := raw[signatureLength-1]; v <= 1 || v == 27 || v == 28 {
		if v <= 1 {
			v += 27
		}
		compact := make([]byte, 0, signatureLength)
		compact = append(compact, v)
		compact = append(compact, raw[:signatureLength-1]...)
		return compact, nil
	}
	return raw, nil
}

func addressFromPublicKey(pub *secp256k1.PublicKey) string {
	uncompressed := pub.SerializeUncompressed()
	digest := keccak256(uncompressed[1:])
	return "0x" + hex.EncodeToString(digest[12:])
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
