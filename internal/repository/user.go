package repository

import (
	"context"
	"errors"

	"github.com/heergandhi/axon-backend/internal/domain"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a row does not exist or belongs to another
// user. Callers cannot distinguish the two cases, which is intentional.
var ErrNotFound = errors.New("record not found")

// UserRepository handles account rows
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ListBriefingRecipients returns users who have opted in to morning
// briefings, i.e. those without deep work protection enabled.
func (r *UserRepository) ListBriefingRecipients(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).
		Where("deep_work_protection = ?", false).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
