package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
)

// envelopeError converts a CryptoCompare error envelope into a Go error.
// The API reports most request-level failures as HTTP 200 bodies shaped like
// {"Response": "Error", "Message": "..."}; the library hands those through as
// successful payloads, so the CLI inspects them here.
func envelopeError(payload cryptocompare.Payload) error {
	if resp, _ := payload["Response"].(string); resp != "Error" {
		return nil
	}
	if msg, _ := payload["Message"].(string); msg != "" {
		return fmt.Errorf("api error: %s", msg)
	}
	return fmt.Errorf("api error")
}

// render prints payload to the command's stdout, either as indented JSON
// (--json) or as aligned key/value lines.
func (o *rootOpts) render(cmd *cobra.Command, payload cryptocompare.Payload) error {
	if o.jsonOut {
		return writeJSON(cmd.OutOrStdout(), payload)
	}
	if len(payload) == 0 {
		printInfo("empty response")
		return nil
	}
	renderMap(payload)
	return nil
}

// writeJSON pretty-prints payload as indented JSON to w.
func writeJSON(w io.Writer, payload cryptocompare.Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// renderMap prints payload as aligned key/value lines. One level of nesting
// is rendered as highlighted sections (e.g. per-coin blocks in a price
// matrix). Keys are sorted so output is stable run to run.
func renderMap(payload map[string]any) {
	for _, key := range sortedKeys(payload) {
		if nested, ok := payload[key].(map[string]any); ok {
			fmt.Println(StyleHighlight.Render(key))
			for _, sub := range sortedKeys(nested) {
				printKeyValue("  "+sub, formatValue(nested[sub]))
			}
			continue
		}
		printKeyValue(key, formatValue(payload[key]))
	}
}

// formatValue renders a single decoded JSON value for display. Numbers keep
// their natural form (42000.5 rather than 4.20005e+04), and composites fall
// back to compact JSON.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any, []any:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
