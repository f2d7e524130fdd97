package services

import (
	"context"
	"errors"
	"time"

	"github.com/heergandhi/axon-backend/internal/analytics"
	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/coaching"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/repository"
)

// coachLookbackDays is how much check-in history the coach sees
const coachLookbackDays = 7

// CoachService assembles the coaching context from stored data and hands
// it to the configured provider. Provider failures surface as external
// errors; the HTTP layer decides how to degrade.
type CoachService struct {
	provider coaching.Provider
	users    UserStore
	habits   HabitStore
	checkIns CheckInStore
	now      func() time.Time
}

func NewCoachService(provider coaching.Provider, users UserStore, habits HabitStore, checkIns CheckInStore) *CoachService {
	return &CoachService{
		provider: provider,
		users:    users,
		habits:   habits,
		checkIns: checkIns,
		now:      time.Now,
	}
}

func (s *CoachService) Analyze(ctx context.Context, userID string) (*coaching.Suggestion, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	today := s.now()
	since := today.AddDate(0, 0, -(coachLookbackDays - 1)).Format("2006-01-02")
	checkIns, err := s.checkIns.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	todayStr := today.Format("2006-01-02")
	completedToday := 0
	for _, c := range checkIns {
		if c.Date == todayStr && c.Status == domain.StatusCompleted {
			completedToday++
		}
	}

	suggestion, err := s.provider.Analyze(ctx, coaching.AnalysisContext{
		User:           user,
		Habits:         habits,
		RecentCheckIns: checkIns,
		CompletionRate: analytics.CompletionRate(checkIns),
		CompletedToday: completedToday,
	})
	if err != nil {
		return nil, apperrors.NewExternalAPIError(err, "coaching")
	}
	return suggestion, nil
}

func (s *CoachService) Quote(ctx context.Context) (string, error) {
	quote, err := s.provider.Quote(ctx)
	if err != nil {
		return "", apperrors.NewExternalAPIError(err, "coaching")
	}
	return quote, nil
}
