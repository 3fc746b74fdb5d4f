package httputil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/tickerhub/cryptocompare/pkg/observability"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(nil, 0, "", nil)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.timeout, DefaultTimeout)
	}
}

func TestNewClientOverrides(t *testing.T) {
	hc := &http.Client{}
	client := NewClient(hc, 3*time.Second, "agent/1.0", nil)

	if client.http != hc {
		t.Error("NewClient() http client not set correctly")
	}
	if client.timeout != 3*time.Second {
		t.Errorf("timeout = %v, want %v", client.timeout, 3*time.Second)
	}
	if client.userAgent != "agent/1.0" {
		t.Errorf("userAgent = %q, want %q", client.userAgent, "agent/1.0")
	}
}

func TestDoGet(t *testing.T) {
	var gotMethod, gotPath, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"BTC": 42000.5}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	payload, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/data/",
		Endpoint: "price",
		Params:   Params{String("fsym", "ETH"), List("tsyms", "BTC")},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %q, want %q", gotMethod, http.MethodGet)
	}
	if gotPath != "/data/price" {
		t.Errorf("path = %q, want %q", gotPath, "/data/price")
	}
	if gotQuery != "fsym=ETH&tsyms=BTC" {
		t.Errorf("query = %q, want %q", gotQuery, "fsym=ETH&tsyms=BTC")
	}
	if payload["BTC"] != 42000.5 {
		t.Errorf("payload[BTC] = %v, want %v", payload["BTC"], 42000.5)
	}
}

func TestDoPreservesQueryOrderAndDuplicates(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
		Params: Params{
			String("fsym", "ETH"),
			String("e", "CCCAGG"),
			String("e", "Coinbase"),
		},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	want := "fsym=ETH&e=CCCAGG&e=Coinbase"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestDoStripsTimeoutParam(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
		Params:   Params{String("fsym", "BTC"), Timeout(5 * time.Second)},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if gotQuery != "fsym=BTC" {
		t.Errorf("query = %q, want %q", gotQuery, "fsym=BTC")
	}
}

func TestDoTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 20*time.Millisecond, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Do() error = %v, want ErrTimeout", err)
	}
}

func TestDoTimeoutOverrideWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// Client default is generous; the per-call override must shorten it.
	client := NewClient(server.Client(), 5*time.Second, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
		Params:   Params{Timeout(20 * time.Millisecond)},
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Do() error = %v, want ErrTimeout", err)
	}
}

func TestDoInvalidTimeoutOverrideIgnored(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 2*time.Second, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
		Params:   Params{String("timeout", "soon"), String("fsym", "BTC")},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	// The unparsable override is dropped from the wire and the default applies.
	if gotQuery != "fsym=BTC" {
		t.Errorf("query = %q, want %q", gotQuery, "fsym=BTC")
	}
}

func TestDoEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with no body at all.
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	payload, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if payload == nil {
		t.Fatal("Do() payload is nil, want empty map")
	}
	if len(payload) != 0 {
		t.Errorf("payload = %v, want empty", payload)
	}
}

func TestDoDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("rate limit exceeded"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Do() error = %v, want ErrDecode", err)
	}
}

func TestDoStatusError(t *testing.T) {
	hits := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"Message": "endpoint gone"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "coinsnapshot",
	})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Do() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusNotFound)
	}
	if statusErr.Endpoint != "coinsnapshot" {
		t.Errorf("Endpoint = %q, want %q", statusErr.Endpoint, "coinsnapshot")
	}
	if statusErr.Payload["Message"] != "endpoint gone" {
		t.Errorf("Payload[Message] = %v, want %q", statusErr.Payload["Message"], "endpoint gone")
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (no retries)", hits)
	}
}

func TestDoStatusErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Do() error = %v, want *StatusError", err)
	}
	if statusErr.Payload != nil {
		t.Errorf("Payload = %v, want nil for undecodable body", statusErr.Payload)
	}
}

func TestDoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil, 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  url + "/",
		Endpoint: "price",
	})
	if !errors.Is(err, ErrTransport) {
		t.Errorf("Do() error = %v, want ErrTransport", err)
	}
}

func TestDoPostRawStringBody(t *testing.T) {
	var gotBody, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodPost,
		BaseURL:  server.URL + "/",
		Endpoint: "submit",
		Body:     "fsym=BTC&raw=1",
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if gotBody != "fsym=BTC&raw=1" {
		t.Errorf("body = %q, want %q", gotBody, "fsym=BTC&raw=1")
	}
	if gotContentType != "text/plain; charset=utf-8" {
		t.Errorf("content type = %q, want %q", gotContentType, "text/plain; charset=utf-8")
	}
}

func TestDoPostJSONBody(t *testing.T) {
	var gotBody, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodPost,
		BaseURL:  server.URL + "/",
		Endpoint: "submit",
		Body:     map[string]int{"limit": 10},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if gotBody != `{"limit":10}` {
		t.Errorf("body = %q, want %q", gotBody, `{"limit":10}`)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want %q", gotContentType, "application/json")
	}
}

func TestDoSetsUserAgent(t *testing.T) {
	var gotAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "tickerhub/1.0", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if gotAgent != "tickerhub/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "tickerhub/1.0")
	}
}

func TestDoEmitsHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	hooks := &countingHooks{}
	observability.SetHTTPHooks(hooks)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0, "", nil)
	_, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if hooks.requests != 1 || hooks.responses != 1 || hooks.failures != 0 {
		t.Errorf("hooks = %d/%d/%d (request/response/error), want 1/1/0",
			hooks.requests, hooks.responses, hooks.failures)
	}

	// A transport failure fires OnError instead of OnResponse.
	server.Close()
	client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		BaseURL:  server.URL + "/",
		Endpoint: "price",
	})

	if hooks.requests != 2 || hooks.responses != 1 || hooks.failures != 1 {
		t.Errorf("hooks = %d/%d/%d (request/response/error), want 2/1/1",
			hooks.requests, hooks.responses, hooks.failures)
	}
}

type countingHooks struct {
	observability.NoopHTTPHooks
	requests  int
	responses int
	failures  int
}

func (h *countingHooks) OnRequest(context.Context, string, string, string) { h.requests++ }
func (h *countingHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {
	h.responses++
}
func (h *countingHooks) OnError(context.Context, string, string, string, error) { h.failures++ }

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]any
		wantErr bool
	}{
		{"empty", "", map[string]any{}, false},
		{"whitespace only", "  \n\t ", map[string]any{}, false},
		{"object", `{"USD": 1.5}`, map[string]any{"USD": 1.5}, false},
		{"nested object", `{"RAW": {"PRICE": 7}}`, map[string]any{"RAW": map[string]any{"PRICE": 7.0}}, false},
		{"invalid json", "not json", nil, true},
		{"truncated json", `{"USD": `, nil, true},
		{"top-level array", `[1, 2]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Error("Decode() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTimeout(t *testing.T) {
	client := NewClient(nil, time.Second, "", nil)

	tests := []struct {
		name        string
		params      Params
		wantTimeout time.Duration
		wantWire    string
	}{
		{
			name:        "no override",
			params:      Params{String("fsym", "BTC")},
			wantTimeout: time.Second,
			wantWire:    "fsym=BTC",
		},
		{
			name:        "override wins",
			params:      Params{String("fsym", "BTC"), Timeout(250 * time.Millisecond)},
			wantTimeout: 250 * time.Millisecond,
			wantWire:    "fsym=BTC",
		},
		{
			name:        "last valid override wins",
			params:      Params{Timeout(100 * time.Millisecond), Timeout(700 * time.Millisecond)},
			wantTimeout: 700 * time.Millisecond,
			wantWire:    "",
		},
		{
			name:        "unparsable ignored",
			params:      Params{String("timeout", "abc"), String("fsym", "BTC")},
			wantTimeout: time.Second,
			wantWire:    "fsym=BTC",
		},
		{
			name:        "non-positive ignored",
			params:      Params{String("timeout", "0")},
			wantTimeout: time.Second,
			wantWire:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeout, wire := client.resolveTimeout(tt.params)
			if timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", timeout, tt.wantTimeout)
			}
			if got := wire.Encode(); got != tt.wantWire {
				t.Errorf("wire = %q, want %q", got, tt.wantWire)
			}
		})
	}
}
