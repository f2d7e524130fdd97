package services

import (
	"context"
	"testing"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRegisterDefaults(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	user, err := svc.Register(context.Background(), "Heer@Example.com", "secret1", "Heer", "Product Manager")
	require.NoError(t, err)

	assert.Equal(t, "heer@example.com", user.Email)
	assert.Equal(t, "dark", user.Theme)
	assert.Equal(t, 50, user.AIIntensity)
	assert.Equal(t, "08:00", user.BriefingTime)
	assert.True(t, user.DeepWorkProtection)
	assert.True(t, user.SmartRescheduling)
	assert.False(t, user.WeekendMonitoring)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	tests := []struct {
		name        string
		email       string
		password    string
		displayName string
	}{
		{name: "bad email", email: "not-an-email", password: "secret1", displayName: "x"},
		{name: "short password", email: "a@b.co", password: "12345", displayName: "x"},
		{name: "missing name", email: "a@b.co", password: "secret1", displayName: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, tt.displayName, "")
			require.Error(t, err)
			assert.Equal(t, 400, apperrors.HTTPStatus(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.co", "secret1", "First", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@b.co", "secret1", "Second", "")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.HTTPStatus(err))
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "a@b.co", "secret1", "Heer", "")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "a@b.co", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(ctx, "a@b.co", "wrong")
	assert.Equal(t, 401, apperrors.HTTPStatus(err))

	_, err = svc.Authenticate(ctx, "nobody@b.co", "secret1")
	assert.Equal(t, 401, apperrors.HTTPStatus(err))
}

func TestUpdateProfile(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@b.co", "secret1", "Heer", "")
	require.NoError(t, err)

	intensity := 80
	deepWork := false
	updated, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{
		Theme:              strPtr("light"),
		AIIntensity:        &intensity,
		BriefingTime:       strPtr("06:30"),
		DeepWorkProtection: &deepWork,
	})
	require.NoError(t, err)

	assert.Equal(t, "light", updated.Theme)
	assert.Equal(t, 80, updated.AIIntensity)
	assert.Equal(t, "06:30", updated.BriefingTime)
	assert.False(t, updated.DeepWorkProtection)
	// Untouched fields keep their values
	assert.Equal(t, "Heer", updated.DisplayName)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@b.co", "secret1", "Heer", "")
	require.NoError(t, err)

	badIntensity := 101
	tests := []struct {
		name   string
		update domain.ProfileUpdate
	}{
		{name: "bad theme", update: domain.ProfileUpdate{Theme: strPtr("neon")}},
		{name: "intensity out of range", update: domain.ProfileUpdate{AIIntensity: &badIntensity}},
		{name: "bad briefing time", update: domain.ProfileUpdate{BriefingTime: strPtr("8am")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(ctx, user.ID, tt.update)
			require.Error(t, err)
			assert.Equal(t, 400, apperrors.HTTPStatus(err))
		})
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
