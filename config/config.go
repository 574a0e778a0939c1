package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
)

type Config struct {
	ProjectDir string `json:"project_dir"`
	ReportsDir string `json:"reports_dir"`

	LLMProvider string  `json:"llm_provider"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`

	// Upstream quota on the generation endpoint, requests per minute.
	LLMRequestsPerMinute int `json:"llm_requests_per_minute"`

	HTTPTimeout time.Duration `json:"http_timeout"`

	NewsLanguage string `json:"news_language"`
	NewsCountry  string `json:"news_country"`
	NewsLimit    int    `json:"news_limit"`

	GeminiAPIKey   string `json:"gemini_api_key"`
	OpenAIAPIKey   string `json:"openai_api_key"`
	OpenAIBaseURL  string `json:"openai_base_url"`
	DeepSeekAPIKey string `json:"deepseek_api_key"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		ProjectDir: currentDir,
		ReportsDir: filepath.Join(currentDir, "reports"),

		LLMProvider: ProviderGemini,
		Temperature: 0.7,
		MaxTokens:   2048,

		LLMRequestsPerMinute: 15,

		// Single attempt per call, bounded so a dead endpoint cannot hang a run.
		HTTPTimeout: 10 * time.Second,

		NewsLanguage: "en",
		NewsCountry:  "US",
		NewsLimit:    3,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	if cfg.Model == "" {
		cfg.Model = defaultModelFor(cfg.LLMProvider)
	}

	return cfg
}

func defaultModelFor(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderDeepSeek:
		return "deepseek-chat"
	default:
		return "gemini-2.5-flash"
	}
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PROJECT_DIR"); val != "" {
		c.ProjectDir = val
	}
	if val := os.Getenv("REPORTS_DIR"); val != "" {
		c.ReportsDir = val
	}

	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		c.LLMProvider = val
	}
	if val := os.Getenv("LLM_MODEL"); val != "" {
		c.Model = val
	}
	if val := os.Getenv("LLM_MAX_TOKENS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.MaxTokens = v
		}
	}
	if val := os.Getenv("LLM_REQUESTS_PER_MINUTE"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.LLMRequestsPerMinute = v
		}
	}

	if val := os.Getenv("HTTP_TIMEOUT_SECONDS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.HTTPTimeout = time.Duration(v) * time.Second
		}
	}

	if val := os.Getenv("NEWS_LANGUAGE"); val != "" {
		c.NewsLanguage = val
	}
	if val := os.Getenv("NEWS_COUNTRY"); val != "" {
		c.NewsCountry = val
	}
	if val := os.Getenv("NEWS_LIMIT"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.NewsLimit = v
		}
	}

	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.GeminiAPIKey = val
	}
	// Older deployments still carry the Google SDK variable name.
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("OPENAI_BASE_URL"); val != "" {
		c.OpenAIBaseURL = val
	}
	if val := os.Getenv("DEEPSEEK_API_KEY"); val != "" {
		c.DeepSeekAPIKey = val
	}
}

// Validate checks startup preconditions. A missing credential for the
// selected provider is fatal before any research stage runs.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLMProvider)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.LLMProvider)
		}
	case ProviderDeepSeek:
		if c.DeepSeekAPIKey == "" {
			return fmt.Errorf("DEEPSEEK_API_KEY is required for provider %q", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unknown LLM provider %q", c.LLMProvider)
	}

	if c.NewsLimit <= 0 {
		return fmt.Errorf("news limit must be positive, got %d", c.NewsLimit)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.ProjectDir, c.ReportsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
