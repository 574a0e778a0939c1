package research

import (
	"regexp"
	"strings"
)

// tickerPattern matches plausible exchange symbols: a short alphanumeric
// body with an optional exchange suffix, e.g. AAPL, PETR4.SA, BRK-B.
var tickerPattern = regexp.MustCompile(`^[A-Z0-9]{1,6}([.-][A-Z0-9]{1,4})?$`)

// SanitizeTicker normalizes raw model output into a clean ticker symbol.
// It unwraps markdown code fences, drops backticks and emphasis markers,
// and uppercases the remainder. Anything that still does not look like a
// ticker (empty, containing whitespace, too long) yields "", the canonical
// "ticker not determined" value. Never guesses.
func SanitizeTicker(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = unwrapCodeFence(s)
	s = strings.NewReplacer("`", "", "*", "").Replace(s)
	s = strings.TrimSpace(s)

	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return ""
	}

	s = strings.ToUpper(s)
	if !tickerPattern.MatchString(s) {
		return ""
	}
	return s
}

// unwrapCodeFence returns the useful content of a ```-fenced block, or the
// input unchanged when it is not fenced. A fence language line and blank
// lines are discarded; if more than one content line remains the block is
// ambiguous and returned as-is for the caller's whitespace check to reject.
func unwrapCodeFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	inner := s[start+3:]
	if end := strings.Index(inner, "```"); end >= 0 {
		inner = inner[:end]
	}

	var lines []string
	for _, line := range strings.Split(inner, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	case 2:
		// First line may be a fence language tag such as "text".
		if isFenceLanguage(lines[0]) {
			return lines[1]
		}
	}
	return strings.Join(lines, " ")
}

func isFenceLanguage(line string) bool {
	for _, r := range line {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return line != ""
}
