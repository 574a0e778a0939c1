package research

import (
	"fmt"
	"strings"
)

const reportRule = "================================================================================"

// RenderReport formats a dossier as the flat text handed to the persistence
// layer. Degraded fields are rendered as "not available" lines so the report
// always has the same section shape.
func RenderReport(result *Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\nCOMPANY RESEARCH REPORT: %s\n%s\n\n", reportRule, strings.ToUpper(result.Query), reportRule)
	fmt.Fprintf(&sb, "Generated: %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))

	sb.WriteString("A. EXECUTIVE SUMMARY\n\n")
	if result.Summary != "" {
		sb.WriteString(result.Summary)
		sb.WriteString("\n")
	} else {
		sb.WriteString("Not available.\n")
	}

	sb.WriteString("\nB. RECENT NEWS\n\n")
	if len(result.News) > 0 {
		for i, item := range result.News {
			fmt.Fprintf(&sb, "[%d] %s\n", i+1, item.Title)
			if item.Published != "" {
				fmt.Fprintf(&sb, "    Date: %s\n", item.Published)
			}
			if item.Link != "" {
				fmt.Fprintf(&sb, "    Link: %s\n", item.Link)
			}
		}
	} else {
		sb.WriteString("No news available.\n")
	}

	sb.WriteString("\nC. STOCK QUOTE\n\n")
	if result.Ticker != "" {
		fmt.Fprintf(&sb, "Ticker: %s\n", result.Ticker)
		if !result.Quote.IsZero() {
			fmt.Fprintf(&sb, "Price: %s %s\n", result.Quote.Currency, result.Quote.Price.StringFixed(2))
		} else {
			sb.WriteString("Quote not available.\n")
		}
	} else {
		sb.WriteString("Ticker not determined.\n")
	}

	fmt.Fprintf(&sb, "\n%s\n", reportRule)
	return sb.String()
}
