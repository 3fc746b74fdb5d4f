package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// priceOpts holds the command-line flags for the price commands.
type priceOpts struct {
	root     *rootOpts
	exchange string // exchange to query (empty = CCCAGG aggregate)
	full     bool   // include full market data in price multi
	ts       int64  // historical timestamp in unix seconds (0 = latest)
}

// extras returns the optional query parameters shared by the price commands.
func (o *priceOpts) extras() httputil.Params {
	var params httputil.Params
	if o.exchange != "" {
		params = append(params, httputil.String("e", o.exchange))
	}
	return params
}

// newPriceCmd creates the price command with the multi and historical
// subcommands.
//
// The bare command fetches the current price of one coin; "price multi"
// covers several source coins at once, and "price historical" resolves a
// price at a past timestamp.
func newPriceCmd(root *rootOpts) *cobra.Command {
	opts := priceOpts{root: root}

	cmd := &cobra.Command{
		Use:   "price <fsym> <tsyms>",
		Short: "Current price of a coin in one or more currencies",
		Long: `Current price of a coin in one or more target currencies.

Examples:
  cryptocompare price BTC USD
  cryptocompare price ETH USD,EUR,BTC
  cryptocompare price BTC USD -e Coinbase`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return root.runQuery(c, "Fetching price", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.Price(ctx, cryptocompare.Symbol(args[0]), symbolList(args[1]), opts.extras()...)
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.exchange, "exchange", "e", "", "exchange to query (default: CCCAGG aggregate)")

	cmd.AddCommand(newPriceMultiCmd(&opts))
	cmd.AddCommand(newPriceHistoricalCmd(&opts))

	return cmd
}

// newPriceMultiCmd creates the "price multi" subcommand for price matrices.
func newPriceMultiCmd(opts *priceOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multi <fsyms> <tsyms>",
		Short: "Price matrix for several coins at once",
		Long: `Price matrix for several source coins against several target currencies.

With --full each cell carries the complete market snapshot (volume, supply,
24h change) instead of just the price.

Examples:
  cryptocompare price multi BTC,ETH USD,EUR
  cryptocompare price multi BTC,ETH,LTC USD --full`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Fetching prices", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				fsyms, tsyms := symbolList(args[0]), symbolList(args[1])
				if opts.full {
					return client.PriceMultiFull(ctx, fsyms, tsyms, opts.extras()...)
				}
				return client.PriceMulti(ctx, fsyms, tsyms, opts.extras()...)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.full, "full", false, "include volume, supply, and 24h stats")

	return cmd
}

// newPriceHistoricalCmd creates the "price historical" subcommand.
func newPriceHistoricalCmd(opts *priceOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "historical <fsym> <tsyms>",
		Short: "Price of a coin at a past timestamp",
		Long: `Price of a coin in one or more currencies at a specific moment.

The timestamp is given in unix seconds via --ts; without it the API resolves
the most recent price.

Examples:
  cryptocompare price historical BTC USD --ts 1452680400
  cryptocompare price historical ETH USD,EUR --ts 1500000000 -e Kraken`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Fetching historical price", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				extra := opts.extras()
				if opts.ts > 0 {
					extra = append(extra, httputil.String("ts", strconv.FormatInt(opts.ts, 10)))
				}
				return client.PriceHistorical(ctx, cryptocompare.Symbol(args[0]), symbolList(args[1]), extra...)
			})
		},
	}

	cmd.Flags().Int64Var(&opts.ts, "ts", 0, "unix timestamp in seconds (0 = latest)")

	return cmd
}
