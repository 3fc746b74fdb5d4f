package httputil

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// timeoutKey is the reserved parameter name consumed by [Client.Do] as the
// per-call deadline override. It never reaches the server.
const timeoutKey = "timeout"

// Param is a single query parameter. Values are always scalar strings;
// use the constructors to convert other types.
type Param struct {
	Key   string
	Value string
}

// String builds a string-valued parameter.
func String(key, value string) Param { return Param{Key: key, Value: value} }

// Int builds an integer-valued parameter.
func Int(key string, value int) Param { return Param{Key: key, Value: strconv.Itoa(value)} }

// Bool builds a boolean-valued parameter encoded as "true" or "false".
func Bool(key string, value bool) Param {
	return Param{Key: key, Value: strconv.FormatBool(value)}
}

// List builds a parameter from an ordered collection of tokens joined with
// a single comma. The remote API accepts only scalar string values, so
// collections must be flattened before they enter a parameter set.
func List(key string, values ...string) Param {
	return Param{Key: key, Value: strings.Join(values, ",")}
}

// Timeout builds the reserved per-call deadline override, in milliseconds.
// [Client.Do] strips it from the outgoing query and applies it as the
// request deadline in place of the client default.
func Timeout(d time.Duration) Param {
	return Param{Key: timeoutKey, Value: strconv.FormatInt(d.Milliseconds(), 10)}
}

// Params is an ordered parameter set. It is built fresh per call and never
// mutated after construction.
type Params []Param

// Encode serializes the set as a URL query string in insertion order.
// Unlike [url.Values.Encode], it never sorts keys and never collapses
// duplicates: a key supplied twice is sent twice.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
