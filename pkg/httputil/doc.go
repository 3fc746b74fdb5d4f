// Package httputil provides the HTTP request layer for the market-data API.
//
// # Overview
//
// This package provides the infrastructure shared by every API operation:
//
//   - [Params]: ordered query parameters with deterministic encoding
//   - [Client]: one-shot request execution with timeout control
//   - [Decode]: response-body decoding into a generic JSON object
//
// # Parameters
//
// [Params] preserves insertion order and duplicate keys, so the exact
// outbound query string is deterministic and testable:
//
//	params := httputil.Params{
//	    httputil.String("fsym", "ETH"),
//	    httputil.List("tsyms", "BTC", "USD"),
//	}
//	params.Encode() // "fsym=ETH&tsyms=BTC%2CUSD"
//
// # Requests
//
// [Client.Do] performs exactly one attempt per call; it never retries and
// never caches. The deadline is the client-wide default unless the parameter
// set carries a [Timeout] override, which wins verbatim and is stripped from
// the outgoing query.
//
//	client := httputil.NewClient(nil, 0, "my-app/1.0", nil)
//	payload, err := client.Do(ctx, httputil.Request{
//	    Method:   http.MethodGet,
//	    BaseURL:  "https://min-api.cryptocompare.com/data/",
//	    Endpoint: "price",
//	    Params:   params,
//	})
//
// # Errors
//
// Failures are classified into three sentinel kinds ([ErrTransport],
// [ErrTimeout], [ErrDecode]) plus [StatusError] for non-2xx responses,
// which carries the decoded body so server-reported detail is not lost.
// Match kinds with errors.Is and status errors with errors.As.
package httputil
