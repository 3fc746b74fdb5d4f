package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tickerhub/cryptocompare/pkg/observability"
)

// DefaultTimeout is the per-request deadline applied when neither the
// client configuration nor the call's parameter set provides one.
const DefaultTimeout = 8000 * time.Millisecond

// Request describes one API call. BaseURL is a fixed absolute URL prefix
// ending in a slash; Endpoint is concatenated onto it unchanged. Body is
// only meaningful for POST requests: strings and byte slices are sent
// verbatim, anything else is serialized to JSON.
type Request struct {
	Method   string
	BaseURL  string
	Endpoint string
	Params   Params
	Body     any
}

// Client executes API requests. Every call is a single attempt bounded by
// a deadline; responses are decoded into generic JSON objects. The zero
// value is not usable; construct with [NewClient]. A Client is immutable
// and safe for concurrent use.
type Client struct {
	http      *http.Client
	timeout   time.Duration
	userAgent string
	logger    *log.Logger
}

// NewClient creates a Client. A nil httpClient falls back to a plain
// net/http client; a non-positive timeout falls back to [DefaultTimeout].
// logger may be nil, in which case the client logs nothing. Deadlines are
// enforced per request via context, so the underlying http.Client carries
// no global timeout of its own.
func NewClient(httpClient *http.Client, timeout time.Duration, userAgent string, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      httpClient,
		timeout:   timeout,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Do performs one HTTP request and decodes the response body.
//
// The request deadline is the client default unless req.Params carries a
// [Timeout] override, which wins verbatim and is stripped from the query.
// Non-2xx responses return a [*StatusError] carrying the decoded body;
// transport failures and deadline expiry return [ErrTransport] and
// [ErrTimeout] respectively. The call is attempted exactly once.
func (c *Client) Do(ctx context.Context, req Request) (map[string]any, error) {
	timeout, params := c.resolveTimeout(req.Params)

	url := req.BaseURL + req.Endpoint
	if enc := params.Encode(); enc != "" {
		url += "?" + enc
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, req.Endpoint, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	host, path := httpReq.URL.Host, httpReq.URL.Path
	var id string
	if c.logger != nil {
		id = uuid.NewString()
		c.logger.Debug("api request", "id", id, "method", req.Method, "url", url, "timeout", timeout)
	}
	observability.HTTP().OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		err = classify(req.Endpoint, err)
		observability.HTTP().OnError(ctx, req.Method, host, path, err)
		if c.logger != nil {
			c.logger.Debug("api failure", "id", id, "err", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	observability.HTTP().OnResponse(ctx, req.Method, host, path, resp.StatusCode, duration)
	if c.logger != nil {
		c.logger.Debug("api response", "id", id, "status", resp.StatusCode, "duration", duration)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(req.Endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := Decode(raw)
		return nil, &StatusError{Endpoint: req.Endpoint, StatusCode: resp.StatusCode, Payload: payload}
	}

	payload, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, req.Endpoint, err)
	}
	return payload, nil
}

// resolveTimeout extracts the reserved timeout override from params.
// It returns the effective deadline and the parameters that remain on the
// wire. When the override appears more than once the last valid value wins;
// unparsable or non-positive values are ignored.
func (c *Client) resolveTimeout(params Params) (time.Duration, Params) {
	reserved := false
	for _, p := range params {
		if p.Key == timeoutKey {
			reserved = true
			break
		}
	}
	if !reserved {
		return c.timeout, params
	}

	timeout := c.timeout
	wire := make(Params, 0, len(params))
	for _, p := range params {
		if p.Key != timeoutKey {
			wire = append(wire, p)
			continue
		}
		ms, err := strconv.Atoi(p.Value)
		if err != nil || ms <= 0 {
			if c.logger != nil {
				c.logger.Debug("ignoring invalid timeout override", "value", p.Value)
			}
			continue
		}
		timeout = time.Duration(ms) * time.Millisecond
	}
	return timeout, wire
}

// encodeBody converts a request body into a reader and content type.
// Strings and byte slices pass through unchanged; any other non-nil value
// is serialized to JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return strings.NewReader(b), "text/plain; charset=utf-8", nil
	case []byte:
		return bytes.NewReader(b), "application/octet-stream", nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// Decode interprets a response body as a generic JSON object, preserving
// key names exactly as supplied by the server. An empty (or whitespace-only)
// body decodes to an empty, non-nil map rather than an error.
func Decode(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
