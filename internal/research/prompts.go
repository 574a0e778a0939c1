package research

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed prompts
var promptFiles embed.FS

func loadPrompt(name string, context map[string]string) string {
	content, err := promptFiles.ReadFile(fmt.Sprintf("prompts/%s.md", name))
	if err != nil {
		// The prompts are compiled into the binary; a missing one is a bug.
		panic(fmt.Sprintf("prompt %s not embedded: %v", name, err))
	}

	text := string(content)
	for key, value := range context {
		text = strings.ReplaceAll(text, fmt.Sprintf("{{.%s}}", key), value)
	}
	return text
}

// SummaryPrompt is the open-ended executive-summary prompt for a company.
func SummaryPrompt(company string) string {
	return loadPrompt("summary", map[string]string{"Company": company})
}

// TickerPrompt is the few-shot prompt that asks for a bare ticker symbol.
func TickerPrompt(company string) string {
	return loadPrompt("ticker", map[string]string{"Company": company})
}
