// Package cryptocompare provides a client for the CryptoCompare market-data API.
//
// # Overview
//
// Every remote operation is exposed as one method on [Client]: current
// prices ([Client.Price], [Client.PriceMulti], [Client.PriceMultiFull]),
// averages ([Client.GenerateAvg], [Client.DayAvg]), historical data
// ([Client.PriceHistorical], [Client.HistoMinute], [Client.HistoHour],
// [Client.HistoDay]), coin metadata ([Client.CoinList], [Client.CoinSnapshot],
// [Client.CoinSnapshotFullByID]), mining data ([Client.MiningEquipment],
// [Client.MiningContracts]), and trading volume ([Client.TopPairs]).
//
// # Client Pattern
//
// All operations follow a consistent pattern:
//
//	client := cryptocompare.New(cryptocompare.Config{})
//	payload, err := client.Price(ctx, cryptocompare.Symbol("ETH"),
//	    cryptocompare.Symbols{"BTC", "USD"})
//
// Symbol arguments take a [Symbols] collection; a collection is flattened
// to one comma-joined token before it enters the query. Every operation
// also accepts trailing [httputil.Param] extras, appended verbatim after
// the operation's required parameters with no validation and no
// deduplication.
//
// # Payloads
//
// The API is schemaless by design: operations return a generic [Payload]
// keyed exactly as the server responds. Application-level error envelopes
// (bodies with "Response": "Error") are returned as ordinary successes;
// interpreting them is the caller's concern.
//
// # Errors
//
// Failures carry a structured kind from [httputil]: ErrTransport, ErrTimeout,
// ErrDecode, or a *StatusError for non-2xx responses. The client never
// retries; each call is exactly one HTTP attempt.
//
// # Endpoints Without a Typed Method
//
// [Client.Get] and [Client.Post] reach any other endpoint on the mini API
// host while keeping the same parameter encoding, timeout, and decode
// behavior.
package cryptocompare
