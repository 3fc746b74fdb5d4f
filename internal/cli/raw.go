package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
)

// rawOpts holds the command-line flags for the raw commands.
type rawOpts struct {
	root   *rootOpts
	params []string // repeated key=value query parameters
	body   string   // request body for raw post
}

// newRawCmd creates the raw command for endpoints without a typed
// subcommand. Parameters pass through verbatim, in the order given.
func newRawCmd(root *rootOpts) *cobra.Command {
	opts := rawOpts{root: root}

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Call an arbitrary API endpoint",
		Long: `Call an arbitrary endpoint of the mini API.

Endpoints are given relative to the API base (e.g. "exchanges" or
"top/volumes"). Query parameters pass through verbatim, in the order given,
so new or undocumented endpoints work without a CLI release.

Examples:
  cryptocompare raw get exchanges
  cryptocompare raw get top/volumes --param tsym=USD --param limit=10
  cryptocompare raw post feedback --body '{"text":"hello"}'`,
	}

	get := &cobra.Command{
		Use:   "get <endpoint>",
		Short: "GET an arbitrary endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			params, err := parseParams(opts.params)
			if err != nil {
				return err
			}
			return opts.root.runQuery(c, "Fetching "+args[0], func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				return client.Get(ctx, args[0], params...)
			})
		},
	}
	get.Flags().StringArrayVar(&opts.params, "param", nil, "query parameter as key=value (repeatable)")

	post := &cobra.Command{
		Use:   "post <endpoint>",
		Short: "POST a raw body to an arbitrary endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return opts.root.runQuery(c, "Posting to "+args[0], func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error) {
				var body any
				if opts.body != "" {
					body = opts.body
				}
				return client.Post(ctx, args[0], body)
			})
		},
	}
	post.Flags().StringVar(&opts.body, "body", "", "request body, sent verbatim")

	cmd.AddCommand(get)
	cmd.AddCommand(post)

	return cmd
}
