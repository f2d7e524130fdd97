package coaching

import (
	"context"
	"fmt"
)

var stubSuggestions = []Suggestion{
	{
		Analysis: "Your deep work sessions are consistently missed early in the week. Front-load lighter habits on Monday and Tuesday to rebuild momentum.",
		SuggestedAdjustment: &Adjustment{
			HabitName: "Deep Work Block",
			Action:    "Move",
			Details:   "Shift the block to Wednesday mornings when your schedule is clearer.",
			Reason:    "Mid-week slots show a higher completion rate in your history.",
		},
	},
	{
		Analysis: "Strong streak on your morning routine. Your intensity score is trending high, so guard your recovery.",
		SuggestedAdjustment: &Adjustment{
			HabitName: "Morning Run",
			Action:    "Focus",
			Details:   "Keep the duration, add a hard cutoff at 30 minutes.",
			Reason:    "Protects the streak without raising cognitive load.",
		},
	},
	{
		Analysis: "One habit has been missed three times running. A shorter version is easier to restart than a perfect one.",
		SuggestedAdjustment: &Adjustment{
			HabitName: "Strategic Reflection",
			Action:    "Reduce",
			Details:   "Shrink the duration from 10 minutes to 2 minutes.",
			Reason:    "Re-establishing the habit matters more than its length.",
		},
	},
}

// StubProvider is a deterministic offline provider for development and
// tests. The suggestion is keyed off the habit count so repeated calls with
// the same data give the same answer.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) Analyze(_ context.Context, analysis AnalysisContext) (*Suggestion, error) {
	if len(analysis.Habits) == 0 {
		return &Suggestion{
			Analysis: "No habits defined yet. Start with one small daily protocol and build from there.",
			SuggestedAdjustment: &Adjustment{
				HabitName: "New Habit",
				Action:    "Add",
				Details:   "Create a single 10 minute habit you can complete every day.",
				Reason:    "Consistency beats ambition when starting out.",
			},
		}, nil
	}
	s := stubSuggestions[len(analysis.Habits)%len(stubSuggestions)]
	s.Analysis = fmt.Sprintf("%s Current completion rate: %d%%.", s.Analysis, analysis.CompletionRate)
	return &s, nil
}

func (p *StubProvider) Quote(_ context.Context) (string, error) {
	return "Discipline is the bridge between goals and accomplishment.", nil
}
