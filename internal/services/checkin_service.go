package services

import (
	"context"
	"errors"
	"time"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/repository"
)

// CheckInStore is the persistence surface the check-in service needs
type CheckInStore interface {
	UpsertForDate(ctx context.Context, checkIn *domain.CheckIn) error
	ListByUserSince(ctx context.Context, userID, sinceDate string) ([]domain.CheckIn, error)
}

// CheckInService records daily outcomes and keeps the habit's stored
// status and streak counter in step.
type CheckInService struct {
	checkIns CheckInStore
	habits   HabitStore
	now      func() time.Time
}

func NewCheckInService(checkIns CheckInStore, habits HabitStore) *CheckInService {
	return &CheckInService{checkIns: checkIns, habits: habits, now: time.Now}
}

// CheckIn upserts today's check-in for the habit. At most one row exists
// per habit per date; re-checking the same day replaces the outcome. The
// habit's live status follows the check-in, and its streak counter
// increments on completed and resets otherwise.
func (s *CheckInService) CheckIn(ctx context.Context, userID string, input domain.CheckInInput) (*domain.CheckIn, error) {
	if input.HabitID == "" {
		return nil, apperrors.NewValidationError("habitId is required")
	}
	if !input.Status.Valid() {
		return nil, apperrors.NewValidationError("Invalid status")
	}
	if len(input.Notes) > 500 {
		return nil, apperrors.NewValidationError("Notes too long")
	}

	habit, err := s.habits.GetByID(ctx, userID, input.HabitID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrHabitNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	now := s.now()
	checkIn := &domain.CheckIn{
		HabitID:   habit.ID,
		UserID:    userID,
		Status:    input.Status,
		Date:      now.Format("2006-01-02"),
		Timestamp: now,
		Notes:     input.Notes,
	}
	if err := s.checkIns.UpsertForDate(ctx, checkIn); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	habit.Status = input.Status
	if input.Status == domain.StatusCompleted {
		habit.Streak++
	} else {
		habit.Streak = 0
	}
	if err := s.habits.Update(ctx, habit); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return checkIn, nil
}
