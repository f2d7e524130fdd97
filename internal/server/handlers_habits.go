package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
)

func (s *Server) handleListHabits(c *gin.Context) {
	habits, err := s.habits.List(c.Request.Context(), userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, habits)
}

func (s *Server) handleCreateHabit(c *gin.Context) {
	var input domain.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.writeError(c, apperrors.NewValidationError("Invalid request body"))
		return
	}

	habit, err := s.habits.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func (s *Server) handleUpdateHabit(c *gin.Context) {
	var input domain.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.writeError(c, apperrors.NewValidationError("Invalid request body"))
		return
	}

	habit, err := s.habits.Update(c.Request.Context(), userID(c), c.Param("id"), input)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

func (s *Server) handleDeleteHabit(c *gin.Context) {
	if err := s.habits.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Habit deleted"})
}

func (s *Server) handleCheckIn(c *gin.Context) {
	var input domain.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.writeError(c, apperrors.NewValidationError("Invalid request body"))
		return
	}

	checkIn, err := s.checkIns.CheckIn(c.Request.Context(), userID(c), input)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "checkIn": checkIn})
}

func (s *Server) handleAnalytics(c *gin.Context) {
	summary, err := s.analytics.Summary(c.Request.Context(), userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
