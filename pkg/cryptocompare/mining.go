package cryptocompare

import (
	"context"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// MiningEquipment returns the catalogue of mining hardware tracked by the
// API, keyed by equipment ID under MiningData.
func (c *Client) MiningEquipment(ctx context.Context, extra ...httputil.Param) (Payload, error) {
	return c.full(ctx, "miningequipment", extra)
}

// MiningContracts returns the catalogue of cloud mining contracts, keyed
// by contract ID under MiningData.
func (c *Client) MiningContracts(ctx context.Context, extra ...httputil.Param) (Payload, error) {
	return c.full(ctx, "miningcontracts", extra)
}
