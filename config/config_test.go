package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "./data/pages.db", cfg.Store.DatabasePath)
	assert.False(t, cfg.Store.DegradeToMiss)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("STORE_DEGRADE_TO_MISS", "true")
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("LLM_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Store.RedisURL)
	assert.True(t, cfg.Store.DegradeToMiss)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestRedisDriverRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestUnknownDriverRejected(t *testing.T) {
	t.Setenv("STORE_DRIVER", "etcd")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported store driver")
}

func TestDeepseekRequiresBaseURL(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "deepseek")
	t.Setenv("LLM_BASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "LLM_BASE_URL")
}
