// Package cli implements the cryptocompare command-line interface.
//
// This package provides commands for querying the CryptoCompare market-data
// API: current and historical prices, averages, top trading pairs, the coin
// catalogue, and mining data. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - price: Current, matrix, and historical prices
//   - hist: Minute, hourly, and daily OHLCV candles
//   - avg: Day averages and custom volume-weighted averages
//   - top: Top trading pairs by volume
//   - coins: Coin catalogue and per-coin snapshots
//   - mining: Mining equipment and contracts
//   - raw: Arbitrary endpoints without a typed command
//
// # Configuration
//
// Commands read an optional TOML config file (--config, $CRYPTOCOMPARE_CONFIG,
// or the user config dir), overridable per key with CRYPTOCOMPARE_* environment
// variables. The library itself never reads the environment.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command and the API client share
// one logger.
//
// # Example
//
//	import "github.com/tickerhub/cryptocompare/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
