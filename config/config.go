package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries everything the process needs. It is resolved once in
// main and injected into the components that use it; nothing reads the
// environment after startup.
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	Store StoreConfig
	LLM   LLMConfig
	Log   LogConfig
}

type StoreConfig struct {
	Driver       string `envconfig:"STORE_DRIVER" default:"sqlite"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./data/pages.db"`
	RedisURL     string `envconfig:"REDIS_URL"`
	// DegradeToMiss serves the blank shell when a store read fails
	// instead of returning a server error.
	DegradeToMiss bool `envconfig:"STORE_DEGRADE_TO_MISS" default:"false"`
}

type LLMConfig struct {
	Provider  string        `envconfig:"LLM_PROVIDER" default:"openai"`
	Model     string        `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
	APIKey    string        `envconfig:"LLM_API_KEY"`
	BaseURL   string        `envconfig:"LLM_BASE_URL"`
	MaxTokens int           `envconfig:"LLM_MAX_TOKENS" default:"16000"`
	Timeout   time.Duration `envconfig:"LLM_TIMEOUT" default:"2m"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads .env if present, then the environment, and validates.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.DatabasePath == "" {
			return errors.New("DATABASE_PATH is required for the sqlite store")
		}
	case "redis":
		if c.Store.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis store")
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}

	switch c.LLM.Provider {
	case "openai", "deepseek", "mock":
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLM.Provider)
	}
	if c.LLM.Provider == "deepseek" && c.LLM.BaseURL == "" {
		return errors.New("LLM_BASE_URL is required for the deepseek provider (OpenAI-compatible endpoint)")
	}
	return nil
}
