package cryptocompare

import (
	"context"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// TopPairs returns the top trading pairs for fsym by 24h aggregated volume.
// Useful extras: tsym to restrict the quote currency, limit for the number
// of pairs (default 5).
func (c *Client) TopPairs(ctx context.Context, fsym Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
	}
	return c.mini(ctx, "top/pairs", append(params, extra...))
}
