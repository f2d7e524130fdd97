package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heergandhi/axon-backend/internal/coaching"
	"github.com/heergandhi/axon-backend/internal/config"
	"github.com/heergandhi/axon-backend/internal/database"
	"github.com/heergandhi/axon-backend/internal/logger"
	"github.com/heergandhi/axon-backend/internal/mailer"
	"github.com/heergandhi/axon-backend/internal/ratelimit"
	"github.com/heergandhi/axon-backend/internal/repository"
	"github.com/heergandhi/axon-backend/internal/server"
	"github.com/heergandhi/axon-backend/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("configuration loaded", "env", cfg.Env)

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)

	provider, err := coaching.NewProvider(cfg.AI)
	if err != nil {
		logger.Fatal("failed to build coaching provider", "error", err)
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Backend == "redis" {
		limiter, err = ratelimit.NewRedisLimiter(cfg.Redis.Host, cfg.Redis.Port, cfg.RateLimit.Limit, cfg.RateLimit.Window)
		if err != nil {
			logger.Fatal("failed to connect rate limiter to Redis", "error", err)
		}
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	mail := mailer.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.From)

	srv := server.New(cfg, server.Deps{
		Users:     services.NewUserService(userRepo),
		Habits:    services.NewHabitService(habitRepo),
		CheckIns:  services.NewCheckInService(checkInRepo, habitRepo),
		Analytics: services.NewAnalyticsService(habitRepo, checkInRepo),
		Briefings: services.NewBriefingService(userRepo, mail),
		Coach:     services.NewCoachService(provider, userRepo, habitRepo, checkInRepo),
		Limiter:   limiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.Addr); err != nil {
		logger.Fatal("server failed", "error", err)
	}
	logger.Info("server stopped")
}
