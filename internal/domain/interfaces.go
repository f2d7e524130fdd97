package domain

import (
	"context"
)

// HabitInput is the validated payload for creating or updating a habit.
// Pointer fields distinguish "absent" from zero on update.
type HabitInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Weight      *int   `json:"weight"`
}

// CheckInInput records today's outcome for a habit
type CheckInInput struct {
	HabitID string      `json:"habitId"`
	Status  HabitStatus `json:"status"`
	Notes   string      `json:"notes"`
}

// ProfileUpdate carries optional profile changes
type ProfileUpdate struct {
	DisplayName        *string `json:"display_name"`
	Role               *string `json:"role"`
	ProfessionalFocus  *string `json:"professional_focus"`
	Theme              *string `json:"theme"`
	AIIntensity        *int    `json:"ai_intensity"`
	WeekendMonitoring  *bool   `json:"weekend_monitoring"`
	SmartRescheduling  *bool   `json:"smart_rescheduling"`
	BriefingTime       *string `json:"briefing_time"`
	DeepWorkProtection *bool   `json:"deep_work_protection"`
}

// UserService handles accounts and profiles
type UserService interface {
	Register(ctx context.Context, email, password, displayName, role string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

// HabitService handles habit CRUD, always scoped to the owning user
type HabitService interface {
	List(ctx context.Context, userID string) ([]Habit, error)
	Create(ctx context.Context, userID string, input HabitInput) (*Habit, error)
	Update(ctx context.Context, userID, habitID string, input HabitInput) (*Habit, error)
	Delete(ctx context.Context, userID, habitID string) error
}

// CheckInService records daily outcomes and maintains habit streaks
type CheckInService interface {
	CheckIn(ctx context.Context, userID string, input CheckInInput) (*CheckIn, error)
}

// AnalyticsService aggregates a user's history into dashboard metrics
type AnalyticsService interface {
	Summary(ctx context.Context, userID string) (*AnalyticsSummary, error)
}

// BriefingService fans the morning briefing out to eligible users
type BriefingService interface {
	SendMorningBriefings(ctx context.Context) (int, error)
}
