package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"deck-summarizer/internal/cache"
	"deck-summarizer/internal/config"
	"deck-summarizer/internal/llm"
	"deck-summarizer/internal/logger"
)

// Deps bundles the runtime dependencies of the CLI.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	LLM    llm.Client
	Cache  cache.Cache
}

// Build loads env, config, and shared components. A missing .env file is
// fine; the environment itself may carry the key.
func Build() (Deps, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		LLM:    llmClient,
		Cache:  c,
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel), cfg.ChatTimeout)
	if err != nil {
		return nil, err
	}
	log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
	return client, nil
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		log.Info("using Redis summary cache", "addr", cfg.RedisAddr)
		return c, nil
	default:
		return cache.NewNoOpCache(), nil
	}
}
