package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// histOpts holds the command-line flags for the hist commands.
type histOpts struct {
	root      *rootOpts
	exchange  string // exchange to query (empty = CCCAGG aggregate)
	limit     int    // number of candles to return
	aggregate int    // candle aggregation factor (e.g. 3 = 3-minute candles)
	toTS      int64  // last candle timestamp in unix seconds (0 = latest)
}

// extras converts the optional flags into query parameters.
func (o *histOpts) extras() httputil.Params {
	var params httputil.Params
	if o.exchange != "" {
		params = append(params, httputil.String("e", o.exchange))
	}
	if o.limit > 0 {
		params = append(params, httputil.Int("limit", o.limit))
	}
	if o.aggregate > 0 {
		params = append(params, httputil.Int("aggregate", o.aggregate))
	}
	if o.toTS > 0 {
		params = append(params, httputil.String("toTs", strconv.FormatInt(o.toTS, 10)))
	}
	return params
}

// histQuery is the signature shared by the candle methods on the client.
type histQuery func(client *cryptocompare.Client, ctx context.Context, fsym, tsym cryptocompare.Symbols, extra ...httputil.Param) (cryptocompare.Payload, error)

// newHistCmd creates the hist command with minute, hour, and day
// subcommands, each returning OHLCV candles at that resolution.
func newHistCmd(root *rootOpts) *cobra.Command {
	opts := histOpts{root: root}

	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Historical OHLCV candles",
		Long: `Historical open/high/low/close/volume candles.

Resolution is chosen by subcommand: minute, hour, or day. Candles run up to
--to-ts (default now), with --limit entries and optional --aggregate binning.

Examples:
  cryptocompare hist day BTC USD --limit 30
  cryptocompare hist minute ETH USD --aggregate 5 --limit 12
  cryptocompare hist hour BTC EUR --to-ts 1500000000 -e Kraken`,
	}

	cmd.PersistentFlags().StringVarP(&opts.exchange, "exchange", "e", "", "exchange to query (default: CCCAGG aggregate)")
	cmd.PersistentFlags().IntVar(&opts.limit, "limit", 0, "number of candles (0 = API default)")
	cmd.PersistentFlags().IntVar(&opts.aggregate, "aggregate", 0, "aggregate n base candles per entry")
	cmd.PersistentFlags().Int64Var(&opts.toTS, "to-ts", 0, "unix timestamp of the last candle (0 = now)")

	cmd.AddCommand(histCmd(&opts, "minute", "Minute candles", (*cryptocompare.Client).HistoMinute))
	cmd.AddCommand(histCmd(&opts, "hour", "Hourly candles", (*cryptocompare.Client).HistoHour))
	cmd.AddCommand(histCmd(&opts, "day", "Daily candles", (*cryptocompare.Client).HistoDay))

	return cmd
}

// histCmd creates one resolution-specific hist subcommand.
func histCmd(opts *histOpts, name, short string, query histQuery) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <fsym> <tsym>", name),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Fetching candles", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return query(client, ctx, cryptocompare.Symbol(args[0]), cryptocompare.Symbol(args[1]), opts.extras()...)
			})
		},
	}
}
