package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
)

func (s *Server) handleGetProfile(c *gin.Context) {
	profile, err := s.users.GetProfile(c.Request.Context(), userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		s.writeError(c, apperrors.NewValidationError("Invalid request body"))
		return
	}

	profile, err := s.users.UpdateProfile(c.Request.Context(), userID(c), update)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
