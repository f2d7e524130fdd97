package repository

import (
	"context"
	"errors"

	"github.com/heergandhi/axon-backend/internal/domain"
	"gorm.io/gorm"
)

// CheckInRepository handles check-in rows, always scoped by user id
type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// UpsertForDate creates the check-in for (habit, date) or updates the
// existing row in place. At most one row per habit per calendar date.
func (r *CheckInRepository) UpsertForDate(ctx context.Context, checkIn *domain.CheckIn) error {
	var existing domain.CheckIn
	err := r.db.WithContext(ctx).
		Where("habit_id = ? AND user_id = ? AND date = ?", checkIn.HabitID, checkIn.UserID, checkIn.Date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(checkIn).Error
	}
	if err != nil {
		return err
	}

	existing.Status = checkIn.Status
	existing.Timestamp = checkIn.Timestamp
	existing.Notes = checkIn.Notes
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*checkIn = existing
	return nil
}

// ListByUserSince returns all of a user's check-ins dated on or after the
// given YYYY-MM-DD string. Dates sort lexicographically in this format.
func (r *CheckInRepository) ListByUserSince(ctx context.Context, userID, sinceDate string) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, sinceDate).
		Order("date ASC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}
