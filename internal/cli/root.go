package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/buildinfo"
	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// rootOpts holds the persistent flags shared by all subcommands.
type rootOpts struct {
	configPath string        // explicit config file path (--config)
	timeout    time.Duration // request timeout override (--timeout)
	jsonOut    bool          // print raw JSON payloads (--json)
	verbose    bool          // debug logging (--verbose)
}

// Execute runs the cryptocompare CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// given context is propagated into every API request, so cancelling it (for
// example on SIGINT) aborts in-flight calls.
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. Failures are printed here; callers only map the
// returned error onto an exit code.
func Execute(ctx context.Context) error {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%v", err)
	}
	return err
}

// newRootCmd builds the root command and wires up all subcommands.
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Query cryptocurrency market data from the CryptoCompare API",
		Long: `cryptocompare queries the public CryptoCompare market-data API.

It covers current and historical prices, OHLCV candles, averages, top trading
pairs, the coin catalogue, and mining data. Payloads are printed as formatted
key/value output by default; use --json for raw API responses.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (TOML)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (e.g. 5s, 1500ms)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print raw JSON payloads")

	root.AddCommand(newPriceCmd(opts))
	root.AddCommand(newHistCmd(opts))
	root.AddCommand(newAvgCmd(opts))
	root.AddCommand(newTopCmd(opts))
	root.AddCommand(newCoinsCmd(opts))
	root.AddCommand(newMiningCmd(opts))
	root.AddCommand(newRawCmd(opts))
	root.AddCommand(newCompletionCmd())

	return root
}

// client loads the configuration and builds the API client for one command
// invocation. The --timeout flag takes precedence over the config file value.
func (o *rootOpts) client(ctx context.Context) (*cryptocompare.Client, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	cc := cfg.clientConfig(loggerFromContext(ctx))
	if o.timeout > 0 {
		cc.Timeout = o.timeout
	}
	return cryptocompare.New(cc), nil
}

// fetch runs fn behind a terminal spinner and returns its payload. The
// spinner is skipped for --json so piped output stays quiet.
func (o *rootOpts) fetch(message string, fn func() (cryptocompare.Payload, error)) (cryptocompare.Payload, error) {
	if o.jsonOut {
		return fn()
	}
	sp := newSpinner(message)
	sp.Start()
	payload, err := fn()
	sp.Stop()
	return payload, err
}

// runQuery builds the client, executes query behind a spinner, checks the
// payload for an API error envelope, and renders the result. Most commands
// are one call to this helper.
func (o *rootOpts) runQuery(c *cobra.Command, message string, query func(ctx context.Context, client *cryptocompare.Client) (cryptocompare.Payload, error)) error {
	client, err := o.client(c.Context())
	if err != nil {
		return err
	}
	payload, err := o.fetch(message, func() (cryptocompare.Payload, error) {
		return query(c.Context(), client)
	})
	if err != nil {
		return err
	}
	if err := envelopeError(payload); err != nil {
		return err
	}
	return o.render(c, payload)
}

// parseParams converts repeated key=value arguments into query parameters,
// preserving order and duplicates.
func parseParams(pairs []string) (httputil.Params, error) {
	params := make(httputil.Params, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", pair)
		}
		params = append(params, httputil.String(key, value))
	}
	return params, nil
}

// symbolList splits a comma-separated flag value into symbols, trimming
// whitespace and dropping empty entries.
func symbolList(value string) cryptocompare.Symbols {
	parts := strings.Split(value, ",")
	symbols := make(cryptocompare.Symbols, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
