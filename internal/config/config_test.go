package config

import (
	"testing"
	"time"

	"github.com/heergandhi/axon-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "axon", cfg.DB.DBName)
	assert.Equal(t, "stub", cfg.AI.Provider)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, 5, cfg.RateLimit.Limit)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, logger.LevelInfo, cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("COACH_RATE_LIMIT", "10")
	t.Setenv("COACH_RATE_WINDOW_MS", "60000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 10, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, logger.LevelDebug, cfg.Logger.Level)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:       "dev",
			JWTSecret: "dev-session-secret",
			AI:        AIConfig{Provider: "stub"},
			RateLimit: RateLimitConfig{Backend: "memory", Limit: 5, Window: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(*Config) {}},
		{name: "gemini without key", mutate: func(c *Config) { c.AI.Provider = "gemini" }, wantErr: true},
		{name: "gemini with key", mutate: func(c *Config) { c.AI.Provider = "gemini"; c.AI.GeminiAPIKey = "k" }},
		{name: "openai without key", mutate: func(c *Config) { c.AI.Provider = "openai" }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.AI.Provider = "groq" }, wantErr: true},
		{name: "unknown limiter backend", mutate: func(c *Config) { c.RateLimit.Backend = "etcd" }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.Limit = 0 }, wantErr: true},
		{name: "zero window", mutate: func(c *Config) { c.RateLimit.Window = 0 }, wantErr: true},
		{name: "prod with default secret", mutate: func(c *Config) { c.Env = "prod" }, wantErr: true},
		{name: "prod with real secret", mutate: func(c *Config) { c.Env = "prod"; c.JWTSecret = "s3cret" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
