package services

import (
	"context"
	"time"

	"github.com/heergandhi/axon-backend/internal/analytics"
	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
)

// AnalyticsService fetches a user's snapshot and runs the pure analytics
// engine over it. All I/O happens here, before the engine runs.
type AnalyticsService struct {
	habits   HabitStore
	checkIns CheckInStore
	now      func() time.Time
}

func NewAnalyticsService(habits HabitStore, checkIns CheckInStore) *AnalyticsService {
	return &AnalyticsService{habits: habits, checkIns: checkIns, now: time.Now}
}

func (s *AnalyticsService) Summary(ctx context.Context, userID string) (*domain.AnalyticsSummary, error) {
	today := s.now()
	since := today.AddDate(0, 0, -(analytics.WindowDays - 1)).Format("2006-01-02")

	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	checkIns, err := s.checkIns.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return analytics.Summarize(habits, checkIns, today), nil
}
