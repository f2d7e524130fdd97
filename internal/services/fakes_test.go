package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/repository"
)

// In-memory stores standing in for the gorm repositories.

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) ListBriefingRecipients(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		if !u.DeepWorkProtection {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeHabitStore struct {
	habits map[string]*domain.Habit
}

func newFakeHabitStore() *fakeHabitStore {
	return &fakeHabitStore{habits: make(map[string]*domain.Habit)}
}

func (f *fakeHabitStore) ListByUser(_ context.Context, userID string) ([]domain.Habit, error) {
	var out []domain.Habit
	for _, h := range f.habits {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHabitStore) GetByID(_ context.Context, userID, habitID string) (*domain.Habit, error) {
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHabitStore) Create(_ context.Context, habit *domain.Habit) error {
	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}
	cp := *habit
	f.habits[habit.ID] = &cp
	return nil
}

func (f *fakeHabitStore) Update(_ context.Context, habit *domain.Habit) error {
	cp := *habit
	f.habits[habit.ID] = &cp
	return nil
}

func (f *fakeHabitStore) Delete(_ context.Context, userID, habitID string) error {
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.habits, habitID)
	return nil
}

type fakeCheckInStore struct {
	checkIns []*domain.CheckIn
}

func newFakeCheckInStore() *fakeCheckInStore {
	return &fakeCheckInStore{}
}

func (f *fakeCheckInStore) UpsertForDate(_ context.Context, checkIn *domain.CheckIn) error {
	for _, c := range f.checkIns {
		if c.HabitID == checkIn.HabitID && c.Date == checkIn.Date {
			c.Status = checkIn.Status
			c.Timestamp = checkIn.Timestamp
			c.Notes = checkIn.Notes
			*checkIn = *c
			return nil
		}
	}
	if checkIn.ID == "" {
		checkIn.ID = uuid.NewString()
	}
	cp := *checkIn
	f.checkIns = append(f.checkIns, &cp)
	return nil
}

func (f *fakeCheckInStore) ListByUserSince(_ context.Context, userID, sinceDate string) ([]domain.CheckIn, error) {
	var out []domain.CheckIn
	for _, c := range f.checkIns {
		if c.UserID == userID && c.Date >= sinceDate {
			out = append(out, *c)
		}
	}
	return out, nil
}
