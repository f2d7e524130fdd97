package coaching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiProvider generates coaching output via the Gemini API
type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part type from Gemini")
	}
	return string(text), nil
}

func (p *GeminiProvider) Analyze(ctx context.Context, analysis AnalysisContext) (*Suggestion, error) {
	text, err := p.generate(ctx, buildAnalysisPrompt(analysis))
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		// Model ignored the format; the prose is still a usable analysis
		return &Suggestion{Analysis: strings.TrimSpace(text)}, nil
	}
	var suggestion Suggestion
	if err := json.Unmarshal([]byte(jsonStr), &suggestion); err != nil {
		return &Suggestion{Analysis: strings.TrimSpace(text)}, nil
	}
	return &suggestion, nil
}

func (p *GeminiProvider) Quote(ctx context.Context) (string, error) {
	text, err := p.generate(ctx, quotePrompt)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.TrimSpace(text), `"`, ""), nil
}
