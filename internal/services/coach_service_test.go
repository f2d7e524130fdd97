package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/coaching"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) Analyze(context.Context, coaching.AnalysisContext) (*coaching.Suggestion, error) {
	return nil, errors.New("model endpoint down")
}

func (failingProvider) Quote(context.Context) (string, error) {
	return "", errors.New("model endpoint down")
}

type capturingProvider struct {
	got coaching.AnalysisContext
}

func (p *capturingProvider) Analyze(_ context.Context, a coaching.AnalysisContext) (*coaching.Suggestion, error) {
	p.got = a
	return &coaching.Suggestion{Analysis: "looking sharp"}, nil
}

func (p *capturingProvider) Quote(context.Context) (string, error) {
	return "stay the course", nil
}

func newCoachFixture(t *testing.T, provider coaching.Provider) (*CoachService, string) {
	t.Helper()
	ctx := context.Background()

	users := newFakeUserStore()
	habits := newFakeHabitStore()
	checkIns := newFakeCheckInStore()

	user := &domain.User{Email: "a@b.co", DisplayName: "Heer", Role: "PM"}
	require.NoError(t, users.Create(ctx, user))

	habit := &domain.Habit{UserID: user.ID, Name: "Deep Work Block", Duration: "90 min", Weight: 10}
	require.NoError(t, habits.Create(ctx, habit))

	require.NoError(t, checkIns.UpsertForDate(ctx, &domain.CheckIn{
		HabitID: habit.ID, UserID: user.ID, Status: domain.StatusCompleted, Date: "2024-01-05",
	}))
	require.NoError(t, checkIns.UpsertForDate(ctx, &domain.CheckIn{
		HabitID: habit.ID, UserID: user.ID, Status: domain.StatusMissed, Date: "2024-01-04",
	}))

	svc := NewCoachService(provider, users, habits, checkIns)
	svc.now = func() time.Time { return time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC) }
	return svc, user.ID
}

func TestCoachAnalyzeBuildsContext(t *testing.T) {
	provider := &capturingProvider{}
	svc, userID := newCoachFixture(t, provider)

	suggestion, err := svc.Analyze(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "looking sharp", suggestion.Analysis)

	assert.Equal(t, "Heer", provider.got.User.DisplayName)
	assert.Len(t, provider.got.Habits, 1)
	assert.Len(t, provider.got.RecentCheckIns, 2)
	assert.Equal(t, 50, provider.got.CompletionRate)
	assert.Equal(t, 1, provider.got.CompletedToday)
}

func TestCoachAnalyzeUnknownUser(t *testing.T) {
	svc, _ := newCoachFixture(t, coaching.NewStubProvider())
	_, err := svc.Analyze(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCoachProviderFailureIsExternal(t *testing.T) {
	svc, userID := newCoachFixture(t, failingProvider{})

	_, err := svc.Analyze(context.Background(), userID)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)

	_, err = svc.Quote(context.Background())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
}
