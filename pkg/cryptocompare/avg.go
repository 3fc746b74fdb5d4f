package cryptocompare

import (
	"context"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// GenerateAvg computes a custom volume-weighted average price for the
// fsym/tsym pair across the given markets (exchange names).
func (c *Client) GenerateAvg(ctx context.Context, fsym, tsym, markets Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
		httputil.String("tsym", tsym.String()),
		httputil.String("markets", markets.String()),
	}
	return c.mini(ctx, "generateAvg", append(params, extra...))
}

// DayAvg returns the day average price for the fsym/tsym pair. Useful
// extras: avgType (HourVWAP, MidHighLow, VolFVolT), UTCHourDiff for
// non-UTC day boundaries, toTs for a specific day.
func (c *Client) DayAvg(ctx context.Context, fsym, tsym Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
		httputil.String("tsym", tsym.String()),
	}
	return c.mini(ctx, "dayAvg", append(params, extra...))
}
