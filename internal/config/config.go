package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration, read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM
	OpenAIKey   string        `env:"OPENAI_API_KEY"`
	LLMModel    string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	ChatTimeout time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`

	// Per-slide retry policy for rate-limited requests.
	// MaxAttempts counts the initial call, so 5 means up to 4 retries.
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"5" validate:"min=1"`
	RetryBase   time.Duration `env:"RETRY_BASE" envDefault:"500ms" validate:"min=1ms"`

	// MaxConcurrent bounds in-flight slide requests; 0 means unlimited.
	MaxConcurrent int `env:"MAX_CONCURRENT" envDefault:"0" validate:"min=0"`

	// Output: "legacy" writes the annotated "chat GPT answer <n> ..." lines,
	// "json" writes a real JSON array of result strings.
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"legacy" validate:"oneof=legacy json"`

	// Cache
	CacheProvider string        `env:"CACHE_PROVIDER" envDefault:"none" validate:"oneof=none redis"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

var validate = validator.New()

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
