package httputil

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrTransport is returned for network-level failures: connection
	// refused, DNS errors, broken reads.
	ErrTransport = errors.New("transport error")

	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrDecode is returned when a non-empty response body is not a JSON object.
	ErrDecode = errors.New("decode error")
)

// StatusError reports a non-2xx response. Payload carries the decoded
// response body when the server sent valid JSON, so server-reported error
// detail is preserved alongside the status code.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Payload    map[string]any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// classify wraps a transport-level failure as [ErrTimeout] or [ErrTransport].
func classify(endpoint string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, endpoint, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrTransport, endpoint, err)
}
