// Package config loads and validates all configuration the service reads.
// Everything comes from environment variables (optionally seeded from a .env
// file by the entrypoint); the resulting Config is immutable and threaded
// through constructors — no package-level state.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/redditart/commissioner/pkg/version"
)

// Config is the root configuration assembled at startup.
type Config struct {
	BaseURL  string
	LogLevel slog.Level

	// DefaultGoalCents is the fundraising goal applied to a subreddit the
	// first time a donation is attributed to it.
	DefaultGoalCents int64

	// CreatorMark is the text stamped onto finished artwork. Empty disables
	// stamping.
	CreatorMark string

	Queue     QueueConfig
	Agent     AgentConfig
	Upstream  UpstreamConfig
	Payment   PaymentConfig
	Reddit    RedditConfig
	Retention RetentionConfig
}

// PaymentConfig holds payment gateway credentials.
type PaymentConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
}

// RedditConfig holds social platform credentials for one agent identity.
type RedditConfig struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

// Load assembles Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:          getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DefaultGoalCents: int64(getEnvInt("FUNDRAISING_GOAL_CENTS", 10000)),
		CreatorMark:      getEnv("CREATOR_MARK", "r/redditart"),
		Queue:            loadQueueConfig(),
		Agent:            loadAgentConfig(),
		Upstream:         loadUpstreamConfig(),
		Retention:        loadRetentionConfig(),
		Payment: PaymentConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
			WebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Reddit: RedditConfig{
			ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
			ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
			Username:     os.Getenv("REDDIT_USERNAME"),
			Password:     os.Getenv("REDDIT_PASSWORD"),
			UserAgent:    getEnv("REDDIT_USER_AGENT", version.Full()),
		},
	}

	if err := cfg.Queue.Validate(); err != nil {
		return nil, fmt.Errorf("queue config: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "default", defaultVal)
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		slog.Warn("Invalid boolean in environment, using default", "key", key, "default", defaultVal)
	}
	return defaultVal
}

func getEnvSeconds(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
		slog.Warn("Invalid duration in environment, using default", "key", key, "default", defaultVal)
	}
	return defaultVal
}
