package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	emailPattern        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	briefingTimePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// UserStore is the persistence surface the user service needs
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// UserService handles registration, login and profile management
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, email, password, displayName, role string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("Invalid email")
	}
	if len(password) < 6 {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}
	if displayName == "" || len(displayName) > 100 {
		return nil, apperrors.NewValidationError("Name is required and must be at most 100 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewDatabaseError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &domain.User{
		Email:              email,
		PasswordHash:       string(hash),
		DisplayName:        displayName,
		Role:               role,
		Theme:              "dark",
		AIIntensity:        50,
		SmartRescheduling:  true,
		BriefingTime:       "08:00",
		DeepWorkProtection: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.New(apperrors.ErrorTypeUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.New(apperrors.ErrorTypeUnauthorized, "Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	if err := validateProfileUpdate(update); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.ProfessionalFocus != nil {
		user.ProfessionalFocus = *update.ProfessionalFocus
	}
	if update.Theme != nil {
		user.Theme = *update.Theme
	}
	if update.AIIntensity != nil {
		user.AIIntensity = *update.AIIntensity
	}
	if update.WeekendMonitoring != nil {
		user.WeekendMonitoring = *update.WeekendMonitoring
	}
	if update.SmartRescheduling != nil {
		user.SmartRescheduling = *update.SmartRescheduling
	}
	if update.BriefingTime != nil {
		user.BriefingTime = *update.BriefingTime
	}
	if update.DeepWorkProtection != nil {
		user.DeepWorkProtection = *update.DeepWorkProtection
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

func validateProfileUpdate(update domain.ProfileUpdate) error {
	if update.DisplayName != nil && len(*update.DisplayName) > 100 {
		return apperrors.NewValidationError("Name too long")
	}
	if update.Role != nil && len(*update.Role) > 100 {
		return apperrors.NewValidationError("Role too long")
	}
	if update.ProfessionalFocus != nil && len(*update.ProfessionalFocus) > 200 {
		return apperrors.NewValidationError("Focus too long")
	}
	if update.Theme != nil {
		switch *update.Theme {
		case "light", "dark", "system":
		default:
			return apperrors.NewValidationError("Theme must be light, dark or system")
		}
	}
	if update.AIIntensity != nil && (*update.AIIntensity < 0 || *update.AIIntensity > 100) {
		return apperrors.NewValidationError("AI intensity must be between 0 and 100")
	}
	if update.BriefingTime != nil && !briefingTimePattern.MatchString(*update.BriefingTime) {
		return apperrors.NewValidationError("Invalid time format")
	}
	return nil
}
