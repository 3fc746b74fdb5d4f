package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
)

// coinsOpts holds the command-line flags for the coins commands.
type coinsOpts struct {
	root   *rootOpts
	browse bool // open the interactive coin browser
	limit  int  // rows to print in the static table
}

// newCoinsCmd creates the coins command with the list, snapshot, and
// snapshot-full subcommands.
func newCoinsCmd(root *rootOpts) *cobra.Command {
	opts := coinsOpts{root: root}

	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Coin catalogue and per-coin snapshots",
	}

	cmd.AddCommand(newCoinsListCmd(&opts))
	cmd.AddCommand(newCoinsSnapshotCmd(&opts))
	cmd.AddCommand(newCoinsSnapshotFullCmd(&opts))

	return cmd
}

// newCoinsListCmd creates the "coins list" subcommand. By default it prints
// a table of coins; --browse opens an interactive, scrollable browser.
func newCoinsListCmd(opts *coinsOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the coins known to the API",
		Long: `List the coins known to the API with their symbol, name, and algorithm.

The default output is a table of the first --limit coins in the API's sort
order. Use --browse to scroll the full catalogue interactively, or --json for
the raw payload.

Examples:
  cryptocompare coins list
  cryptocompare coins list --limit 100
  cryptocompare coins list --browse`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			client, err := opts.root.client(c.Context())
			if err != nil {
				return err
			}
			payload, err := opts.root.fetch("Fetching coin list", func() (cryptocompare.Payload, error) {
				return client.CoinList(c.Context())
			})
			if err != nil {
				return err
			}
			if err := envelopeError(payload); err != nil {
				return err
			}
			if opts.root.jsonOut {
				return writeJSON(c.OutOrStdout(), payload)
			}
			rows := coinRowsFromPayload(payload)
			if opts.browse {
				return browseCoins(rows)
			}
			fmt.Fprintln(c.OutOrStdout(), renderCoinTable(rows, opts.limit))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.browse, "browse", false, "browse the catalogue interactively")
	cmd.Flags().IntVar(&opts.limit, "limit", 30, "rows to print (0 = all)")

	return cmd
}

// newCoinsSnapshotCmd creates the "coins snapshot" subcommand.
func newCoinsSnapshotCmd(opts *coinsOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <fsym> <tsym>",
		Short: "Aggregated market snapshot for a pair",
		Long: `Aggregated market snapshot for a pair: aggregated data plus the
individual exchanges trading it.

Example:
  cryptocompare coins snapshot BTC USD`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Fetching snapshot", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.CoinSnapshot(ctx, cryptocompare.Symbol(args[0]), cryptocompare.Symbol(args[1]))
			})
		},
	}
}

// newCoinsSnapshotFullCmd creates the "coins snapshot-full" subcommand.
func newCoinsSnapshotFullCmd(opts *coinsOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot-full <id>",
		Short: "Full snapshot of a coin by its numeric API id",
		Long: `Full snapshot of a coin addressed by its numeric API id, including
general info and ICO data where available. Ids appear in the coins list
payload.

Example:
  cryptocompare coins snapshot-full 7605`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid coin id %q: %w", args[0], err)
			}
			return opts.root.runQuery(c, "Fetching snapshot", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.CoinSnapshotFullByID(ctx, id)
			})
		},
	}
}
