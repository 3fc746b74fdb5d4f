package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// avgOpts holds the command-line flags for the avg commands.
type avgOpts struct {
	root        *rootOpts
	exchange    string // exchange to query (dayAvg only)
	avgType     string // averaging method (e.g. HourVWAP, MidHighLow)
	utcHourDiff int    // timezone shift for day boundaries, in hours
	toTS        int64  // day to average, unix seconds (0 = today)
}

// newAvgCmd creates the avg command with the day and generate subcommands.
func newAvgCmd(root *rootOpts) *cobra.Command {
	opts := avgOpts{root: root}

	cmd := &cobra.Command{
		Use:   "avg",
		Short: "Averaged prices",
		Long: `Averaged prices.

"avg day" returns the day average of a pair, optionally shifted to another
timezone or a past day. "avg generate" computes a custom volume-weighted
average from a chosen set of markets.

Examples:
  cryptocompare avg day BTC USD
  cryptocompare avg day ETH USD --type MidHighLow --to-ts 1500000000
  cryptocompare avg generate BTC USD Coinbase,Kraken,Bitstamp`,
	}

	cmd.AddCommand(newAvgDayCmd(&opts))
	cmd.AddCommand(newAvgGenerateCmd(&opts))

	return cmd
}

// newAvgDayCmd creates the "avg day" subcommand.
func newAvgDayCmd(opts *avgOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <fsym> <tsym>",
		Short: "Day average price of a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Fetching day average", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				var extra httputil.Params
				if opts.exchange != "" {
					extra = append(extra, httputil.String("e", opts.exchange))
				}
				if opts.avgType != "" {
					extra = append(extra, httputil.String("avgType", opts.avgType))
				}
				if opts.utcHourDiff != 0 {
					extra = append(extra, httputil.Int("UTCHourDiff", opts.utcHourDiff))
				}
				if opts.toTS > 0 {
					extra = append(extra, httputil.String("toTs", strconv.FormatInt(opts.toTS, 10)))
				}
				return client.DayAvg(ctx, cryptocompare.Symbol(args[0]), cryptocompare.Symbol(args[1]), extra...)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.exchange, "exchange", "e", "", "exchange to query (default: CCCAGG aggregate)")
	cmd.Flags().StringVar(&opts.avgType, "type", "", "averaging method (HourVWAP, MidHighLow, VolFVolT)")
	cmd.Flags().IntVar(&opts.utcHourDiff, "utc-hour-diff", 0, "shift day boundaries by n hours")
	cmd.Flags().Int64Var(&opts.toTS, "to-ts", 0, "day to average, unix seconds (0 = today)")

	return cmd
}

// newAvgGenerateCmd creates the "avg generate" subcommand.
func newAvgGenerateCmd(opts *avgOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <fsym> <tsym> <markets>",
		Short: "Custom volume-weighted average over chosen markets",
		Long: `Custom volume-weighted average of a pair over a chosen set of markets.

Markets are given as a comma-separated exchange list.

Example:
  cryptocompare avg generate BTC USD Coinbase,Kraken,Bitstamp`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Generating average", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.GenerateAvg(ctx, cryptocompare.Symbol(args[0]), cryptocompare.Symbol(args[1]), symbolList(args[2]))
			})
		},
	}
}
