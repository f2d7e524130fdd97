package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HabitStatus is the daily outcome of a habit
type HabitStatus string

const (
	StatusPending   HabitStatus = "pending"
	StatusCompleted HabitStatus = "completed"
	StatusMissed    HabitStatus = "missed"
)

// Valid reports whether s is one of the three known statuses
func (s HabitStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusMissed
}

// User is an account plus its profile settings
type User struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	DisplayName        string    `json:"display_name"`
	Role               string    `json:"role"`
	ProfessionalFocus  string    `json:"professional_focus"`
	Theme              string    `gorm:"default:dark" json:"theme"`
	AIIntensity        int       `gorm:"default:50" json:"ai_intensity"`
	WeekendMonitoring  bool      `gorm:"default:false" json:"weekend_monitoring"`
	SmartRescheduling  bool      `gorm:"default:true" json:"smart_rescheduling"`
	BriefingTime       string    `gorm:"default:'08:00'" json:"briefing_time"`
	DeepWorkProtection bool      `gorm:"default:true" json:"deep_work_protection"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Habit is a daily protocol entry owned by a single user. Duration is a
// string like "25 min"; Weight is the cognitive-load contribution (1-10).
type Habit struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string      `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description"`
	Duration    string      `json:"duration"`
	Status      HabitStatus `gorm:"default:pending" json:"status"`
	Streak      int         `gorm:"default:0" json:"streak"`
	Category    string      `json:"category,omitempty"`
	Weight      int         `gorm:"default:5" json:"weight"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	CheckIns []CheckIn `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// CheckIn records one habit's outcome for one calendar date. The unique
// index on (habit_id, date) enforces the upsert-per-day discipline.
type CheckIn struct {
	ID        string      `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID   string      `gorm:"type:uuid;uniqueIndex:idx_checkins_habit_date;not null" json:"habit_id"`
	UserID    string      `gorm:"type:uuid;index;not null" json:"user_id"`
	Status    HabitStatus `gorm:"not null" json:"status"`
	Date      string      `gorm:"uniqueIndex:idx_checkins_habit_date;not null" json:"date"` // YYYY-MM-DD
	Timestamp time.Time   `json:"timestamp"`
	Notes     string      `json:"notes,omitempty"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IntensityPoint is one day of the charting series
type IntensityPoint struct {
	Day       string `json:"day"`
	Intensity int    `json:"intensity"`
	Focus     int    `json:"focus"`
}

// AnalyticsSummary is the aggregate the analytics endpoint returns
type AnalyticsSummary struct {
	IntensityData      []IntensityPoint `json:"intensityData"`
	CompletionRate     int              `json:"completionRate"`
	TotalFocusMinutes  int              `json:"totalFocusMinutes"`
	CurrentStreak      int              `json:"currentStreak"`
	CognitiveLoadScore int              `json:"cognitiveLoadScore"`
}
