package cli

import (
	"testing"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    string
		wantErr bool
	}{
		{"empty", nil, "", false},
		{"single pair", []string{"tsym=USD"}, "tsym=USD", false},
		{"order preserved", []string{"tsym=USD", "limit=10"}, "tsym=USD&limit=10", false},
		{"duplicates preserved", []string{"e=CCCAGG", "e=Coinbase"}, "e=CCCAGG&e=Coinbase", false},
		{"empty value ok", []string{"sign="}, "sign=", false},
		{"value with equals", []string{"q=a=b"}, "q=a%3Db", false},
		{"missing equals", []string{"tsymUSD"}, "", true},
		{"empty key", []string{"=USD"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parseParams(tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseParams(%v) error = %v, wantErr %v", tt.pairs, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := params.Encode(); got != tt.want {
				t.Errorf("parseParams(%v).Encode() = %q, want %q", tt.pairs, got, tt.want)
			}
		})
	}
}

func TestSymbolList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"single", "BTC", "BTC"},
		{"multiple", "BTC,ETH,LTC", "BTC,ETH,LTC"},
		{"whitespace trimmed", " BTC , ETH ", "BTC,ETH"},
		{"empty segments dropped", "BTC,,ETH,", "BTC,ETH"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := symbolList(tt.value).String(); got != tt.want {
				t.Errorf("symbolList(%q).String() = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
