package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/vbmelo/dossiergo/config"
)

// chatGenerator calls an OpenAI-compatible or DeepSeek chat model through eino.
type chatGenerator struct {
	model       model.BaseChatModel
	temperature float32
	limiter     *rate.Limiter
}

func newChatGenerator(ctx context.Context, cfg *config.Config, limiter *rate.Limiter) (*chatGenerator, error) {
	var (
		chatModel model.BaseChatModel
		err       error
	)

	switch cfg.LLMProvider {
	case config.ProviderDeepSeek:
		chatModel, err = deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			APIKey:    cfg.DeepSeekAPIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		})
	default:
		maxTokens := cfg.MaxTokens
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:   cfg.OpenAIBaseURL,
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.Model,
			MaxTokens: &maxTokens,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("create %s chat model: %w", cfg.LLMProvider, err)
	}

	return &chatGenerator{
		model:       chatModel,
		temperature: cfg.Temperature,
		limiter:     limiter,
	}, nil
}

func (g *chatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	msg, err := g.model.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	}, model.WithTemperature(g.temperature))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", fmt.Errorf("no content generated")
	}

	return msg.Content, nil
}
