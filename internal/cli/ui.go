package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vbmelo/dossiergo/internal/research"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1).
		MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6")).
		MarginTop(1)

	bodyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E5E7EB"))

	metaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	quoteStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))

	warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B"))
)

// DisplayDossier renders one research result to the terminal, section by
// section, with degraded fields shown as warnings.
func DisplayDossier(result *research.Result) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("COMPANY RESEARCH: %s", strings.ToUpper(result.Query))))
	fmt.Println(metaStyle.Render("Generated: " + result.GeneratedAt.Format("2006-01-02 15:04:05")))

	fmt.Println(sectionStyle.Render("▶ A. Executive summary"))
	if result.Summary != "" {
		fmt.Println(bodyStyle.Render(result.Summary))
	} else {
		fmt.Println(warnStyle.Render("⚠ Summary not available"))
	}

	fmt.Println(sectionStyle.Render("▶ B. Recent news"))
	if len(result.News) > 0 {
		for i, item := range result.News {
			fmt.Println(bodyStyle.Render(fmt.Sprintf("[%d] %s", i+1, item.Title)))
			if item.Published != "" {
				fmt.Println(metaStyle.Render("    Date: " + item.Published))
			}
			if item.Link != "" {
				fmt.Println(metaStyle.Render("    Link: " + item.Link))
			}
		}
	} else {
		fmt.Println(warnStyle.Render("⚠ No news found"))
	}

	fmt.Println(sectionStyle.Render("▶ C. Stock quote"))
	switch {
	case result.Ticker == "":
		fmt.Println(warnStyle.Render("⚠ Ticker not determined"))
	case result.Quote.IsZero():
		fmt.Println(bodyStyle.Render("Ticker: " + result.Ticker))
		fmt.Println(warnStyle.Render("⚠ Quote not available for " + result.Ticker))
	default:
		fmt.Println(bodyStyle.Render("Ticker: " + result.Ticker))
		fmt.Println(quoteStyle.Render(fmt.Sprintf("Price:  %s %s", result.Quote.Currency, result.Quote.Price.StringFixed(2))))
	}

	if len(result.Failures) > 0 {
		fmt.Println(sectionStyle.Render("▶ Degraded stages"))
		for _, f := range result.Failures {
			fmt.Println(metaStyle.Render(fmt.Sprintf("  %s: %s", f.Stage, f.Reason)))
		}
	}
	fmt.Println()
}
