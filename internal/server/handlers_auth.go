package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heergandhi/axon-backend/internal/apperrors"
)

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) setSession(c *gin.Context, userID, email string) error {
	token, err := s.tokens.Generate(userID, email)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.SetCookie(sessionCookie, token, int(s.tokens.ttl.Seconds()), "/", "", s.env == "prod", true)
	return nil
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperrors.NewValidationError("Invalid request body"))
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName, req.Role)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.setSession(c, user.ID, user.Email); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperrors.NewValidationError("Invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		s.writeError(c, apperrors.NewValidationError("Email and password are required"))
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.setSession(c, user.ID, user.Email); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", s.env == "prod", true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
