// Package registry resolves oracle node identities from the external oracle
// registry state document.
package registry

import (
	"context"
	"errors"
	"strings"
)

// ErrUnknownSigner is returned when an address has no registry entry.
var ErrUnknownSigner = errors.New("signer not found in oracle registry")

// Node describes one oracle node registered for a data service.
type Node struct {
	Name          string `json:"name"`
	EvmAddress    string `json:"evmAddress"`
	DataServiceID string `json:"dataServiceId"`
}

// DataService describes a logical oracle network.
type DataService struct {
	Name string `json:"name,omitempty"`
}

// State is the registry snapshot: all nodes and all data services.
type State struct {
	Nodes        map[string]Node        `json:"nodes"`
	DataServices map[string]DataService `json:"dataServices"`
}

// Client fetches the current registry state.
type Client interface {
	State(ctx context.Context) (State, error)
}

// DataServiceIDForSigner resolves the data service a signer belongs to.
func DataServiceIDForSigner(state State, signerAddress string) (string, error) {
	for _, node := range state.Nodes {
		if strings.EqualFold(node.EvmAddress, signerAddress) {
			return node.DataServiceID, nil
		}
	}
	return "", ErrUnknownSigner
}

// NodeByEvmAddress finds the node registered under the given address.
func NodeByEvmAddress(state State, evmAddress string) (Node, bool) {
	for _, node := range state.Nodes {
		if strings.EqualFold(node.EvmAddress, evmAddress) {
			return node, true
		}
	}
	return Node{}, false
}

// IsDataServiceID reports whether the id names a registered data service.
func IsDataServiceID(state State, dataServiceID string) bool {
	_, ok := state.DataServices[dataServiceID]
	return ok
}

// StaticClient serves a fixed registry state, used in tests and single-node
// deployments.
type StaticClient struct {
	Snapshot State
}

func (c StaticClient) State(_ context.Context) (State, error) {
	return c.Snapshot, nil
}
