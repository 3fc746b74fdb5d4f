// Package pkg provides the libraries composing the CryptoCompare client.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [cryptocompare] - The public API client (one method per remote operation)
//  2. [httputil] - Request execution, timeout control, response decoding
//  3. [observability] - Optional instrumentation hooks around HTTP calls
//  4. [buildinfo] - Build-time version information for the CLI
//
// # Architecture
//
// The data flow through a call:
//
//	caller arguments (symbols, extra parameters)
//	         ↓
//	    [cryptocompare] (coercion + parameter assembly)
//	         ↓
//	    [httputil] (timeout resolution, one HTTP attempt, JSON decode)
//	         ↓
//	    generic payload or classified error
//
// # Quick Start
//
// Fetch the current ETH price in BTC and USD:
//
//	import (
//	    "context"
//	    "github.com/tickerhub/cryptocompare/pkg/cryptocompare"
//	)
//
//	client := cryptocompare.New(cryptocompare.Config{})
//	payload, err := client.Price(context.Background(),
//	    cryptocompare.Symbol("ETH"), cryptocompare.Symbols{"BTC", "USD"})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test -run Example       # Examples only
//
// [cryptocompare]: https://pkg.go.dev/github.com/tickerhub/cryptocompare/pkg/cryptocompare
// [httputil]: https://pkg.go.dev/github.com/tickerhub/cryptocompare/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/tickerhub/cryptocompare/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/tickerhub/cryptocompare/pkg/buildinfo
package pkg
