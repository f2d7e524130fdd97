package repository

import (
	"context"
	"errors"

	"github.com/heergandhi/axon-backend/internal/domain"
	"gorm.io/gorm"
)

// HabitRepository handles habit rows. Every method filters by the owning
// user id; there is no unscoped access path.
type HabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID string) ([]domain.Habit, error) {
	var habits []domain.Habit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *HabitRepository) GetByID(ctx context.Context, userID, habitID string) (*domain.Habit, error) {
	var habit domain.Habit
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *HabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).Save(habit).Error
}

// Delete removes the habit and its check-ins in one transaction. The
// explicit check-in delete keeps the cascade working even on databases
// migrated before the FK constraint existed.
func (r *HabitRepository) Delete(ctx context.Context, userID, habitID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&domain.Habit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("habit_id = ? AND user_id = ?", habitID, userID).Delete(&domain.CheckIn{}).Error
	})
}
