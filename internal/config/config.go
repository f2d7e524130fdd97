package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/heergandhi/axon-backend/internal/logger"
)

type Config struct {
	Env       string
	Addr      string
	JWTSecret string
	JWTTTL    time.Duration
	DB        DBConfig
	AI        AIConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Logger    LoggerConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// AIConfig selects the coaching provider. Provider is one of
// "gemini", "openai" or "stub".
type AIConfig struct {
	Provider     string
	GeminiAPIKey string
	OpenAIAPIKey string
}

type MailConfig struct {
	SendGridAPIKey string
	From           string
	CronSecret     string
}

// RateLimitConfig controls the AI-coaching limiter. Backend is
// "memory" or "redis".
type RateLimitConfig struct {
	Backend string
	Limit   int
	Window  time.Duration
}

type RedisConfig struct {
	Host string
	Port string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		Addr:      getEnvOrDefault("ADDR", ":3001"),
		JWTSecret: getEnvOrDefault("JWT_SECRET", "dev-session-secret"),
		JWTTTL:    time.Duration(getIntOrDefault("JWT_TTL_HOURS", 24*7)) * time.Hour,
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "axon"),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(getEnvOrDefault("AI_PROVIDER", "stub")),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		},
		Mail: MailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			From:           getEnvOrDefault("MAIL_FROM", "briefing@axon.dev"),
			CronSecret:     os.Getenv("CRON_SECRET"),
		},
		RateLimit: RateLimitConfig{
			Backend: strings.ToLower(getEnvOrDefault("RATE_LIMIT_BACKEND", "memory")),
			Limit:   getIntOrDefault("COACH_RATE_LIMIT", 5),
			Window:  time.Duration(getIntOrDefault("COACH_RATE_WINDOW_MS", 3600000)) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host: getEnvOrDefault("REDIS_HOST", "localhost"),
			Port: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations that cannot produce a working service.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("AI_PROVIDER=gemini requires GEMINI_API_KEY")
		}
	case "openai":
		if c.AI.OpenAIAPIKey == "" {
			return fmt.Errorf("AI_PROVIDER=openai requires OPENAI_API_KEY")
		}
	case "stub":
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}

	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown RATE_LIMIT_BACKEND %q", c.RateLimit.Backend)
	}

	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("COACH_RATE_LIMIT must be positive, got %d", c.RateLimit.Limit)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("COACH_RATE_WINDOW_MS must be positive")
	}

	if c.Env == "prod" && c.JWTSecret == "dev-session-secret" {
		return fmt.Errorf("JWT_SECRET must be set explicitly in prod")
	}

	return nil
}
