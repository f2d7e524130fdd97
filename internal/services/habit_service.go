package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/repository"
)

var durationPattern = regexp.MustCompile(`^\d+\s*min$`)

// HabitStore is the persistence surface the habit service needs
type HabitStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Habit, error)
	GetByID(ctx context.Context, userID, habitID string) (*domain.Habit, error)
	Create(ctx context.Context, habit *domain.Habit) error
	Update(ctx context.Context, habit *domain.Habit) error
	Delete(ctx context.Context, userID, habitID string) error
}

// HabitService handles habit CRUD for the authenticated user
type HabitService struct {
	habits HabitStore
}

func NewHabitService(habits HabitStore) *HabitService {
	return &HabitService{habits: habits}
}

func (s *HabitService) List(ctx context.Context, userID string) ([]domain.Habit, error) {
	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return habits, nil
}

func (s *HabitService) Create(ctx context.Context, userID string, input domain.HabitInput) (*domain.Habit, error) {
	if err := validateHabitInput(input); err != nil {
		return nil, err
	}

	weight := 5
	if input.Weight != nil {
		weight = *input.Weight
	}

	habit := &domain.Habit{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Category:    input.Category,
		Status:      domain.StatusPending,
		Streak:      0,
		Weight:      weight,
	}
	if err := s.habits.Create(ctx, habit); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, userID, habitID string, input domain.HabitInput) (*domain.Habit, error) {
	if err := validateHabitInput(input); err != nil {
		return nil, err
	}

	habit, err := s.habits.GetByID(ctx, userID, habitID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrHabitNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	habit.Name = input.Name
	habit.Description = input.Description
	habit.Duration = input.Duration
	habit.Category = input.Category
	if input.Weight != nil {
		habit.Weight = *input.Weight
	}

	if err := s.habits.Update(ctx, habit); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, userID, habitID string) error {
	err := s.habits.Delete(ctx, userID, habitID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrHabitNotFound
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func validateHabitInput(input domain.HabitInput) error {
	if input.Name == "" {
		return apperrors.NewValidationError("Habit name is required")
	}
	if len(input.Name) > 100 {
		return apperrors.NewValidationError("Name too long")
	}
	if len(input.Description) > 500 {
		return apperrors.NewValidationError("Description too long")
	}
	if !durationPattern.MatchString(input.Duration) {
		return apperrors.NewValidationError("Invalid duration format")
	}
	if len(input.Category) > 50 {
		return apperrors.NewValidationError("Category too long")
	}
	if input.Weight != nil && (*input.Weight < 1 || *input.Weight > 10) {
		return apperrors.NewValidationError("Weight must be between 1 and 10")
	}
	return nil
}
