package coaching

import (
	"context"
	"fmt"
	"strings"

	"github.com/heergandhi/axon-backend/internal/config"
	"github.com/heergandhi/axon-backend/internal/domain"
)

// AnalysisContext is the snapshot a provider reasons over. All data is
// already fetched; providers only talk to their model endpoint.
type AnalysisContext struct {
	User           *domain.User
	Habits         []domain.Habit
	RecentCheckIns []domain.CheckIn
	CompletionRate int
	CompletedToday int
}

// Adjustment is one concrete change the coach proposes
type Adjustment struct {
	HabitName string `json:"habitName"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Reason    string `json:"reason"`
}

// Suggestion is the structured coaching response
type Suggestion struct {
	Analysis            string      `json:"analysis"`
	SuggestedAdjustment *Adjustment `json:"suggestedAdjustment"`
}

// Provider generates coaching output. Implementations return errors on
// upstream failure; graceful degradation to fallback text is the caller's
// concern, so no fallback branches hide in here.
type Provider interface {
	Analyze(ctx context.Context, analysis AnalysisContext) (*Suggestion, error)
	Quote(ctx context.Context) (string, error)
}

// Fallback strings served with a 200 when the provider is unavailable
const (
	FallbackAnalysis = "Unable to generate analysis at this moment. Try again later."
	FallbackQuote    = "The secret of getting ahead is getting started."
)

// NewProvider builds the provider selected by configuration
func NewProvider(cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.GeminiAPIKey)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIAPIKey), nil
	case "stub":
		return NewStubProvider(), nil
	default:
		return nil, fmt.Errorf("unknown coaching provider %q", cfg.Provider)
	}
}

const quotePrompt = "You are a high-performance executive coach. Generate ONE short, powerful, unique motivational quote (max 20 words) about discipline, focus, or relentless execution. Do not attribute it to anyone. Do not use quotation marks."

// buildAnalysisPrompt renders the coaching prompt shared by all real
// providers. The model must answer with the Suggestion JSON shape.
func buildAnalysisPrompt(a AnalysisContext) string {
	name, role, focus := "Executive", "Not specified", "General productivity"
	if a.User != nil {
		if a.User.DisplayName != "" {
			name = a.User.DisplayName
		}
		if a.User.Role != "" {
			role = a.User.Role
		}
		if a.User.ProfessionalFocus != "" {
			focus = a.User.ProfessionalFocus
		}
	}

	var habits strings.Builder
	for _, h := range a.Habits {
		fmt.Fprintf(&habits, "- %s (%s, streak: %d)\n", h.Name, h.Duration, h.Streak)
	}
	habitsList := strings.TrimRight(habits.String(), "\n")
	if habitsList == "" {
		habitsList = "No habits yet"
	}

	return fmt.Sprintf(`You are an executive coach AI assistant for a habit tracking system called AXON.

User Profile:
- Name: %s
- Role: %s
- Focus: %s

Current Habits:
%s

Recent Performance (Last 7 days):
- Completion Rate: %d%%
- Completed Today: %d habits
- Total Habits: %d

Based on this data, provide:
1. A brief analysis of their habit performance (2-3 sentences)
2. ONE specific, actionable suggestion to improve their protocol
3. If applicable, suggest adjusting a specific habit

Keep your response concise and direct. Format your response as JSON with these fields:
{
  "analysis": "brief performance analysis",
  "suggestedAdjustment": {
    "habitName": "habit name or 'New Habit'",
    "action": "Add/Reduce/Move/Focus",
    "details": "specific change to make",
    "reason": "why this will help"
  }
}

If performance is good, still provide one optimization suggestion.`,
		name, role, focus, habitsList, a.CompletionRate, a.CompletedToday, len(a.Habits))
}

// extractJSON pulls a JSON object out of a model response that may wrap it
// in code fences or surrounding prose.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
