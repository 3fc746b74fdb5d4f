package cryptocompare

import "strings"

// Symbols is an ordered collection of coin or currency symbols. Operations
// accept Symbols wherever the API takes one symbol or several: the
// collection is flattened to a single comma-joined token, preserving order,
// before any other processing. [Symbol] and a one-element Symbols value
// build identical requests.
type Symbols []string

// Symbol wraps a single symbol token as a Symbols value.
func Symbol(s string) Symbols { return Symbols{s} }

// String joins the collection with commas, in order. The remote API only
// accepts scalar string parameters.
func (s Symbols) String() string { return strings.Join(s, ",") }
