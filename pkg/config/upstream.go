package config

import (
	"os"
	"time"
)

// UpstreamConfig holds credentials, timeouts, and rate limits for every
// external API the pipeline and agents call. Timeouts map to retryable
// failures when exceeded.
type UpstreamConfig struct {
	// LLM (chat completions) settings.
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Image model settings.
	ImageAPIKey   string
	ImageModel    string
	ImageTimeout  time.Duration
	PromptVersion string

	// Image host settings.
	ImageHostClientID     string
	ImageHostClientSecret string

	// Affiliate storefront.
	AffiliateID string
	TemplateID  string

	// General web call timeout (Reddit, image host).
	WebTimeout time.Duration

	// DB statement timeout.
	DBTimeout time.Duration

	// Per-upstream rate limits, requests per minute.
	LLMRatePerMinute    int
	RedditRatePerMinute int
}

// DefaultUpstreamConfig returns the built-in upstream defaults.
func DefaultUpstreamConfig() UpstreamConfig {
	return UpstreamConfig{
		LLMModel:            "gpt-4o",
		LLMTimeout:          60 * time.Second,
		ImageModel:          "dall-e-3",
		ImageTimeout:        180 * time.Second,
		PromptVersion:       "v3",
		TemplateID:          "poster-classic",
		WebTimeout:          30 * time.Second,
		DBTimeout:           10 * time.Second,
		LLMRatePerMinute:    20,
		RedditRatePerMinute: 60,
	}
}

func loadUpstreamConfig() UpstreamConfig {
	cfg := DefaultUpstreamConfig()
	cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.ImageAPIKey = getEnv("IMAGE_API_KEY", cfg.LLMAPIKey)
	cfg.LLMModel = getEnv("LLM_MODEL", cfg.LLMModel)
	cfg.ImageModel = getEnv("IMAGE_MODEL", cfg.ImageModel)
	cfg.PromptVersion = getEnv("PROMPT_VERSION", cfg.PromptVersion)
	cfg.ImageHostClientID = os.Getenv("IMGUR_CLIENT_ID")
	cfg.ImageHostClientSecret = os.Getenv("IMGUR_CLIENT_SECRET")
	cfg.AffiliateID = os.Getenv("AFFILIATE_ID")
	cfg.TemplateID = getEnv("PRODUCT_TEMPLATE_ID", cfg.TemplateID)
	return cfg
}
