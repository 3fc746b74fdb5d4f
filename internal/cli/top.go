package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// topOpts holds the command-line flags for the top commands.
type topOpts struct {
	root  *rootOpts
	tsym  string // restrict pairs to this target currency
	limit int    // number of pairs to return
}

// newTopCmd creates the top command with the pairs subcommand.
func newTopCmd(root *rootOpts) *cobra.Command {
	opts := topOpts{root: root}

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Volume rankings",
	}

	cmd.AddCommand(newTopPairsCmd(&opts))

	return cmd
}

// newTopPairsCmd creates the "top pairs" subcommand.
func newTopPairsCmd(opts *topOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs <fsym>",
		Short: "Top trading pairs for a coin by 24h volume",
		Long: `Top trading pairs for a coin, ranked by 24h aggregated volume.

Examples:
  cryptocompare top pairs BTC
  cryptocompare top pairs ETH --tsym USD --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Fetching top pairs", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				var extra httputil.Params
				if opts.tsym != "" {
					extra = append(extra, httputil.String("tsym", opts.tsym))
				}
				if opts.limit > 0 {
					extra = append(extra, httputil.Int("limit", opts.limit))
				}
				return client.TopPairs(ctx, cryptocompare.Symbol(args[0]), extra...)
			})
		},
	}

	cmd.Flags().StringVar(&opts.tsym, "tsym", "", "only pairs against this currency")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "number of pairs (0 = API default)")

	return cmd
}
