package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
)

// newMiningCmd creates the mining command with the equipment and contracts
// subcommands.
func newMiningCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mining",
		Short: "Mining equipment and contracts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "equipment",
		Short: "List mining hardware tracked by the API",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return root.runQuery(c, "Fetching mining equipment", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.MiningEquipment(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "contracts",
		Short: "List mining contracts tracked by the API",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return root.runQuery(c, "Fetching mining contracts", func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.MiningContracts(ctx)
			})
		},
	})

	return cmd
}
