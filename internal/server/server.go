package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/coaching"
	"github.com/heergandhi/axon-backend/internal/config"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/logger"
	"github.com/heergandhi/axon-backend/internal/ratelimit"
)

// CoachService is the coaching surface the handlers need
type CoachService interface {
	Analyze(ctx context.Context, userID string) (*coaching.Suggestion, error)
	Quote(ctx context.Context) (string, error)
}

// Server wires services into the HTTP surface
type Server struct {
	users     domain.UserService
	habits    domain.HabitService
	checkIns  domain.CheckInService
	analytics domain.AnalyticsService
	briefings domain.BriefingService
	coach     CoachService
	limiter   ratelimit.Limiter
	tokens    *tokenIssuer

	env        string
	cronSecret string
	errs       *apperrors.Handler
}

type Deps struct {
	Users     domain.UserService
	Habits    domain.HabitService
	CheckIns  domain.CheckInService
	Analytics domain.AnalyticsService
	Briefings domain.BriefingService
	Coach     CoachService
	Limiter   ratelimit.Limiter
}

func New(cfg *config.Config, deps Deps) *Server {
	return &Server{
		users:      deps.Users,
		habits:     deps.Habits,
		checkIns:   deps.CheckIns,
		analytics:  deps.Analytics,
		briefings:  deps.Briefings,
		coach:      deps.Coach,
		limiter:    deps.Limiter,
		tokens:     newTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		env:        cfg.Env,
		cronSecret: cfg.Mail.CronSecret,
		errs:       apperrors.NewHandler(logger.GetLogger()),
	}
}

// Router builds the gin engine with all routes mounted
func (s *Server) Router() *gin.Engine {
	if s.env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORS())

	r.GET("/api/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", s.handleSignup)
		auth.POST("/login", s.handleLogin)
		auth.POST("/logout", s.handleLogout)
	}

	api := r.Group("/api", s.AuthRequired())
	{
		api.GET("/habits", s.handleListHabits)
		api.POST("/habits", s.handleCreateHabit)
		api.PUT("/habits/:id", s.handleUpdateHabit)
		api.DELETE("/habits/:id", s.handleDeleteHabit)

		api.POST("/checkin", s.handleCheckIn)
		api.GET("/analytics", s.handleAnalytics)

		api.GET("/users/profile", s.handleGetProfile)
		api.PUT("/users/profile", s.handleUpdateProfile)

		coachLimited := api.Group("", RateLimited(s.limiter))
		coachLimited.POST("/ai-coach", s.handleAICoach)
		coachLimited.GET("/quote", s.handleQuote)
	}

	// Cron-triggered, guarded by CRON_SECRET rather than a session
	r.GET("/api/notifications/briefing", s.handleBriefing)

	return r
}

// Run starts the server with graceful shutdown on ctx cancellation
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr, "env", s.env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// writeError converts an error to the API contract's status and a
// client-safe message, and logs the detail.
func (s *Server) writeError(c *gin.Context, err error) {
	s.errs.Handle(c.Request.Context(), err)
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.ClientMessage(err)})
}
