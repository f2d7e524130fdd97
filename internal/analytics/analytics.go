package analytics

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/heergandhi/axon-backend/internal/domain"
)

// Package analytics derives dashboard metrics from a snapshot of a user's
// habits and check-ins. Everything here is a pure function over already
// fetched data; no I/O, no shared state.

const (
	// WindowDays is the trailing window for rates, load and the chart series
	WindowDays = 30
	// StreakHorizonDays bounds the backward streak walk. A streak longer
	// than the horizon reports the horizon length.
	StreakHorizonDays = 30
	// DefaultWeight is the cognitive-load weight used when a habit predates
	// the weight column
	DefaultWeight = 5

	dateLayout = "2006-01-02"
)

var leadingNumber = regexp.MustCompile(`^\s*(\d+)`)

// ParseDurationMinutes extracts the leading integer from a duration string
// like "25 min". Unparseable input yields 0, never an error.
func ParseDurationMinutes(duration string) int {
	m := leadingNumber.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// CompletionRate is the rounded percentage of completed check-ins. A
// check-in either counts or it doesn't; there is no partial credit.
func CompletionRate(checkIns []domain.CheckIn) int {
	if len(checkIns) == 0 {
		return 0
	}
	completed := 0
	for _, c := range checkIns {
		if c.Status == domain.StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(checkIns)) * 100))
}

// completedCountByHabit counts completed check-ins per habit id
func completedCountByHabit(checkIns []domain.CheckIn) map[string]int {
	counts := make(map[string]int)
	for _, c := range checkIns {
		if c.Status == domain.StatusCompleted {
			counts[c.HabitID]++
		}
	}
	return counts
}

// TotalFocusMinutes sums, per habit, its parsed duration times the number
// of completed check-ins in the window.
func TotalFocusMinutes(habits []domain.Habit, checkIns []domain.CheckIn) int {
	counts := completedCountByHabit(checkIns)
	total := 0
	for _, h := range habits {
		total += ParseDurationMinutes(h.Duration) * counts[h.ID]
	}
	return total
}

// CognitiveLoadScore sums weight times completed count across habits. It is
// a cumulative intensity metric with no upper bound, not a percentage.
func CognitiveLoadScore(habits []domain.Habit, checkIns []domain.CheckIn) int {
	counts := completedCountByHabit(checkIns)
	total := 0
	for _, h := range habits {
		weight := h.Weight
		if weight == 0 {
			weight = DefaultWeight
		}
		total += weight * counts[h.ID]
	}
	return total
}

// CurrentStreak walks backward day by day from today. Today with no
// check-ins is skipped rather than breaking the streak; any earlier empty
// day ends it. A day counts only when every check-in on it is completed; a
// mixed day ends the streak without counting. The walk stops at
// StreakHorizonDays.
func CurrentStreak(checkIns []domain.CheckIn, today time.Time) int {
	byDate := make(map[string][]domain.CheckIn)
	for _, c := range checkIns {
		byDate[c.Date] = append(byDate[c.Date], c)
	}

	streak := 0
	for i := 0; i < StreakHorizonDays; i++ {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		day := byDate[date]
		if len(day) == 0 {
			if i == 0 {
				continue // today not yet acted upon
			}
			break
		}
		allCompleted := true
		for _, c := range day {
			if c.Status != domain.StatusCompleted {
				allCompleted = false
				break
			}
		}
		if !allCompleted {
			break
		}
		streak++
	}
	return streak
}

// IntensitySeries emits one point per trailing day, oldest to newest,
// zero-filled. Intensity is the count of completed check-ins that day;
// focus sums the parsed durations of all of the day's check-ins regardless
// of status.
func IntensitySeries(habits []domain.Habit, checkIns []domain.CheckIn, today time.Time, days int) []domain.IntensityPoint {
	durations := make(map[string]int, len(habits))
	for _, h := range habits {
		durations[h.ID] = ParseDurationMinutes(h.Duration)
	}

	byDate := make(map[string][]domain.CheckIn)
	for _, c := range checkIns {
		byDate[c.Date] = append(byDate[c.Date], c)
	}

	series := make([]domain.IntensityPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		point := domain.IntensityPoint{Day: day.Format("Jan 2")}
		for _, c := range byDate[day.Format(dateLayout)] {
			if c.Status == domain.StatusCompleted {
				point.Intensity++
			}
			point.Focus += durations[c.HabitID]
		}
		series = append(series, point)
	}
	return series
}

// Summarize computes the full analytics payload for one user's snapshot
func Summarize(habits []domain.Habit, checkIns []domain.CheckIn, today time.Time) *domain.AnalyticsSummary {
	return &domain.AnalyticsSummary{
		IntensityData:      IntensitySeries(habits, checkIns, today, WindowDays),
		CompletionRate:     CompletionRate(checkIns),
		TotalFocusMinutes:  TotalFocusMinutes(habits, checkIns),
		CurrentStreak:      CurrentStreak(checkIns, today),
		CognitiveLoadScore: CognitiveLoadScore(habits, checkIns),
	}
}
