package cryptocompare

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tickerhub/cryptocompare/pkg/httputil"
)

// Production base URL prefixes. Endpoint paths are concatenated onto them
// unchanged; most operations use the mini API, while coin metadata and
// mining endpoints live on the full API.
const (
	DefaultMiniAPIURL = "https://min-api.cryptocompare.com/data/"
	DefaultFullAPIURL = "https://www.cryptocompare.com/api/data/"
)

// DefaultTimeout is the per-request deadline applied when Config.Timeout
// is zero. Individual calls may override it with [httputil.Timeout].
const DefaultTimeout = httputil.DefaultTimeout

// Payload is the generic decoded JSON object returned by every operation.
// Key names are preserved exactly as supplied by the server; values are
// arbitrary JSON-compatible values, arrays, or scalars. An empty response
// body yields an empty, non-nil Payload.
type Payload = map[string]any

// Config controls client construction. The zero value is ready for
// production use: requests go to the public API hosts through a plain
// net/http client with [DefaultTimeout].
type Config struct {
	// HTTPClient performs the requests. nil means a plain http.Client.
	HTTPClient *http.Client

	// Timeout is the default per-request deadline. Zero means DefaultTimeout.
	Timeout time.Duration

	// MiniAPIURL and FullAPIURL replace the production base URL prefixes.
	// Both must end in a slash. Intended for tests and proxies.
	MiniAPIURL string
	FullAPIURL string

	// UserAgent is sent with every request when non-empty.
	UserAgent string

	// Logger enables debug logging of requests and responses.
	// nil keeps the client silent.
	Logger *log.Logger
}

// Client provides access to the CryptoCompare market-data API.
//
// Each call is stateless: parameters are assembled fresh, one HTTP attempt
// is made, and nothing is cached or retried. Configuration is read once by
// [New]; the resulting Client is immutable and safe for concurrent use.
type Client struct {
	http    *httputil.Client
	miniURL string
	fullURL string
}

// New creates a Client from cfg. Zero-value fields fall back to defaults.
func New(cfg Config) *Client {
	mini := cfg.MiniAPIURL
	if mini == "" {
		mini = DefaultMiniAPIURL
	}
	full := cfg.FullAPIURL
	if full == "" {
		full = DefaultFullAPIURL
	}
	return &Client{
		http:    httputil.NewClient(cfg.HTTPClient, cfg.Timeout, cfg.UserAgent, cfg.Logger),
		miniURL: mini,
		fullURL: full,
	}
}

// Get performs a GET against an arbitrary mini API endpoint. It is the
// escape hatch for endpoints without a typed method; params are sent in
// the given order with the usual timeout and decode behavior.
func (c *Client) Get(ctx context.Context, endpoint string, params ...httputil.Param) (Payload, error) {
	return c.mini(ctx, endpoint, params)
}

// Post performs a POST against an arbitrary mini API endpoint. String and
// []byte bodies are sent verbatim; any other value is serialized to JSON.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (Payload, error) {
	return c.http.Do(ctx, httputil.Request{
		Method:   http.MethodPost,
		BaseURL:  c.miniURL,
		Endpoint: endpoint,
		Body:     body,
	})
}

func (c *Client) mini(ctx context.Context, endpoint string, params httputil.Params) (Payload, error) {
	return c.http.Do(ctx, httputil.Request{
		Method:   http.MethodGet,
		BaseURL:  c.miniURL,
		Endpoint: endpoint,
		Params:   params,
	})
}

func (c *Client) full(ctx context.Context, endpoint string, params httputil.Params) (Payload, error) {
	return c.http.Do(ctx, httputil.Request{
		Method:   http.MethodGet,
		BaseURL:  c.fullURL,
		Endpoint: endpoint,
		Params:   params,
	})
}
