package research

import (
	"strings"
	"testing"
)

func TestSanitizeTicker(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain US symbol", "AAPL", "AAPL"},
		{"lowercase input", "aapl", "AAPL"},
		{"surrounding whitespace", "  MSFT \n", "MSFT"},
		{"B3 symbol with suffix", "PETR4.SA", "PETR4.SA"},
		{"fenced block", "```PETR4.SA\n```", "PETR4.SA"},
		{"fenced block with language", "```text\nVALE3.SA\n```", "VALE3.SA"},
		{"inline backticks", "`AAPL`", "AAPL"},
		{"bold markdown", "**GOOG**", "GOOG"},
		{"hyphenated class share", "BRK-B", "BRK-B"},
		{"refusal sentence", "I could not find a ticker for that company.", ""},
		{"explanatory prefix", "The ticker is AAPL", ""},
		{"empty input", "", ""},
		{"whitespace only", "  \n\t ", ""},
		{"two symbols", "AAPL MSFT", ""},
		{"too long", "ABCDEFGHIJK", ""},
		{"trailing punctuation", "AAPL.", ""},
		{"embedded newline in fence", "```\nPETR4.SA\nThe Brazilian oil company.\n```", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeTicker(tc.in)
			if got != tc.want {
				t.Fatalf("SanitizeTicker(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Sanitizing an already sanitized value must be a no-op, including for
// rejected inputs that collapsed to the empty string.
func TestSanitizeTickerIdempotent(t *testing.T) {
	inputs := []string{
		"AAPL",
		"aapl",
		"```PETR4.SA\n```",
		"```text\nVALE3.SA\n```",
		"`MSFT`",
		"**GOOG**",
		"BRK-B",
		"I could not find a ticker for that company.",
		"AAPL MSFT",
		"",
		strings.Repeat("A", 50),
	}

	for _, in := range inputs {
		once := SanitizeTicker(in)
		twice := SanitizeTicker(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
