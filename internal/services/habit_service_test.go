package services

import (
	"context"
	"testing"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestHabitCreateDefaults(t *testing.T) {
	svc := NewHabitService(newFakeHabitStore())

	habit, err := svc.Create(context.Background(), "user-1", domain.HabitInput{
		Name:     "Deep Work Block",
		Duration: "90 min",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", habit.UserID)
	assert.Equal(t, domain.StatusPending, habit.Status)
	assert.Equal(t, 0, habit.Streak)
	assert.Equal(t, 5, habit.Weight)
}

func TestHabitCreateReadAfterWrite(t *testing.T) {
	store := newFakeHabitStore()
	svc := NewHabitService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", domain.HabitInput{
		Name:        "Strategic Reflection",
		Description: "Review top 3 objectives.",
		Duration:    "10 min",
		Category:    "Deep Work",
		Weight:      intPtr(8),
	})
	require.NoError(t, err)

	habits, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, habits, 1)

	got := habits[0]
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Duration, got.Duration)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.Weight, got.Weight)
}

func TestHabitCreateValidation(t *testing.T) {
	svc := NewHabitService(newFakeHabitStore())
	ctx := context.Background()

	tests := []struct {
		name  string
		input domain.HabitInput
	}{
		{name: "missing name", input: domain.HabitInput{Duration: "10 min"}},
		{name: "bad duration", input: domain.HabitInput{Name: "x", Duration: "an hour"}},
		{name: "weight too low", input: domain.HabitInput{Name: "x", Duration: "10 min", Weight: intPtr(0)}},
		{name: "weight too high", input: domain.HabitInput{Name: "x", Duration: "10 min", Weight: intPtr(11)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", tt.input)
			require.Error(t, err)
			assert.Equal(t, 400, apperrors.HTTPStatus(err))
		})
	}
}

func TestHabitUpdateForeignHabitIsNotFound(t *testing.T) {
	store := newFakeHabitStore()
	svc := NewHabitService(store)
	ctx := context.Background()

	habit, err := svc.Create(ctx, "owner", domain.HabitInput{Name: "x", Duration: "10 min"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "intruder", habit.ID, domain.HabitInput{Name: "y", Duration: "10 min"})
	assert.ErrorIs(t, err, apperrors.ErrHabitNotFound)

	err = svc.Delete(ctx, "intruder", habit.ID)
	assert.ErrorIs(t, err, apperrors.ErrHabitNotFound)

	// Still there for the owner
	habits, err := svc.List(ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}

func TestHabitUpdateKeepsWeightWhenOmitted(t *testing.T) {
	svc := NewHabitService(newFakeHabitStore())
	ctx := context.Background()

	habit, err := svc.Create(ctx, "user-1", domain.HabitInput{
		Name: "x", Duration: "10 min", Weight: intPtr(9),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", habit.ID, domain.HabitInput{
		Name: "renamed", Duration: "15 min",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Weight)
	assert.Equal(t, "renamed", updated.Name)
}
