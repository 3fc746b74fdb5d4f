package cryptocompare

import (
	"context"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// HistoMinute returns minute OHLCV candles for the fsym/tsym pair under the
// payload's Data key. Useful extras: limit (candle count), aggregate
// (bucket size in minutes), toTs (end timestamp), e (exchange).
func (c *Client) HistoMinute(ctx context.Context, fsym, tsym Symbols, extra ...httputil.Param) (Payload, error) {
	return c.histo(ctx, "histominute", fsym, tsym, extra)
}

// HistoHour returns hourly OHLCV candles for the fsym/tsym pair.
// It accepts the same extras as [Client.HistoMinute].
func (c *Client) HistoHour(ctx context.Context, fsym, tsym Symbols, extra ...httputil.Param) (Payload, error) {
	return c.histo(ctx, "histohour", fsym, tsym, extra)
}

// HistoDay returns daily OHLCV candles for the fsym/tsym pair.
// It accepts the same extras as [Client.HistoMinute], plus allData=true
// for the full history.
func (c *Client) HistoDay(ctx context.Context, fsym, tsym Symbols, extra ...httputil.Param) (Payload, error) {
	return c.histo(ctx, "histoday", fsym, tsym, extra)
}

func (c *Client) histo(ctx context.Context, endpoint string, fsym, tsym Symbols, extra []httputil.Param) (Payload, error) {
	params := httputil.Params{
		httputil.String("fsym", fsym.String()),
		httputil.String("tsym", tsym.String()),
	}
	return c.mini(ctx, endpoint, append(params, extra...))
}
