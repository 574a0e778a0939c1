// Package llm wraps the supported text-generation providers behind a single
// prompt-in, text-out interface.
package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/vbmelo/dossiergo/config"
)

// Generator produces text for a single prompt. Implementations return the
// provider's text unmodified, or an error describing the provider fault;
// callers decide how a fault degrades their output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the generator selected by the configuration. The provider
// credential must already have been validated.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	limiter := newLimiter(cfg.LLMRequestsPerMinute)

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return newGeminiGenerator(ctx, cfg, limiter)
	case config.ProviderOpenAI, config.ProviderDeepSeek:
		return newChatGenerator(ctx, cfg, limiter)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

// newLimiter spaces requests to stay inside the upstream per-minute quota.
func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		perMinute = 15
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
}
