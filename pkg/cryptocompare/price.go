package cryptocompare

import (
	"context"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// Price returns the current price of fsym in each of the tsyms currencies.
//
// The payload maps each target symbol to its price, e.g. {"BTC": 0.045,
// "USD": 3610.33}. Useful extras: e (exchange name, default CCCAGG),
// tryConversion (set false to disable BTC-bridged conversion).
//
// This method is safe for concurrent use.
func (c *Client) Price(ctx context.Context, fsym, tsyms Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
		httputil.String("tsyms", tsyms.String()),
	}
	return c.mini(ctx, "price", append(params, extra...))
}

// PriceMulti returns a price matrix for several source symbols at once:
// the payload maps each fsym to a {tsym: price} object.
func (c *Client) PriceMulti(ctx context.Context, fsyms, tsyms Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsyms", fsyms.String()),
		httputil.String("tsyms", tsyms.String()),
	}
	return c.mini(ctx, "pricemulti", append(params, extra...))
}

// PriceMultiFull returns the full market data matrix for several source
// symbols: volumes, 24h changes, market cap and display-formatted strings,
// nested under RAW and DISPLAY keys.
func (c *Client) PriceMultiFull(ctx context.Context, fsyms, tsyms Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsyms", fsyms.String()),
		httputil.String("tsyms", tsyms.String()),
	}
	return c.mini(ctx, "pricemultifull", append(params, extra...))
}

// PriceHistorical returns the price of fsym in the tsyms currencies at an
// earlier point in time. Pass the moment as a ts extra (Unix timestamp);
// without it the API answers for the current time.
func (c *Client) PriceHistorical(ctx context.Context, fsym, tsyms Symbols, extra ...httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
		httputil.String("tsyms", tsyms.String()),
	}
	return c.mini(ctx, "pricehistorical", append(params, extra...))
}
