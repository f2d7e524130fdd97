package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/coaching"
)

// isUpstreamFailure reports whether the coaching provider itself failed,
// as opposed to our own data layer.
func isUpstreamFailure(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeExternal
}

// handleAICoach runs the coaching analysis. Provider failures degrade to a
// 200 with fallback text: coaching is a non-critical enhancement and must
// not break the client.
func (s *Server) handleAICoach(c *gin.Context) {
	suggestion, err := s.coach.Analyze(c.Request.Context(), userID(c))
	if err != nil {
		if isUpstreamFailure(err) {
			s.errs.Handle(c.Request.Context(), err)
			c.JSON(http.StatusOK, coaching.Suggestion{Analysis: coaching.FallbackAnalysis})
			return
		}
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// handleQuote serves the daily motivational quote with the same 200
// fallback behavior.
func (s *Server) handleQuote(c *gin.Context) {
	quote, err := s.coach.Quote(c.Request.Context())
	if err != nil {
		s.errs.Handle(c.Request.Context(), err)
		c.JSON(http.StatusOK, gin.H{"quote": coaching.FallbackQuote})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// handleBriefing triggers the morning briefing fan-out. It is meant to be
// called by an external scheduler and is guarded by CRON_SECRET instead of
// a user session.
func (s *Server) handleBriefing(c *gin.Context) {
	if s.cronSecret != "" && c.GetHeader("Authorization") != "Bearer "+s.cronSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sent, err := s.briefings.SendMorningBriefings(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "emails_sent": sent})
}
