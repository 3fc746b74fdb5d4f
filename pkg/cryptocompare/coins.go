package cryptocompare

import (
	"context"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// CoinList returns the catalogue of all coins known to the API: the
// payload's Data key maps each symbol to its metadata (name, coin ID,
// algorithm, proof type, supply).
func (c *Client) CoinList(ctx context.Context, extra ...httputil.Param) (Payload, error) {
	return c.full(ctx, "coinlist", extra)
}

// CoinSnapshot returns aggregated market data for the fsym/tsym pair:
// exchanges trading it, aggregated block data and the pair's proof type.
func (c *Client) CoinSnapshot(ctx context.Context, fsym, tsym Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
		httputil.String("tsym", tsym.String()),
	}
	return c.full(ctx, "coinsnapshot", append(params, extra...))
}

// CoinSnapshotFullByID returns the full snapshot for one coin addressed by
// its numeric coin ID (the Id field in the [Client.CoinList] payload):
// general info, ICO data and aggregated market data.
func (c *Client) CoinSnapshotFullByID(ctx context.Context, id int, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.Int("id", id),
	}
	return c.full(ctx, "coinsnapshotfullbyid", append(params, extra...))
}
