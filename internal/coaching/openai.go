package coaching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider generates coaching output via the OpenAI chat API
type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(apiKey)}
}

func (p *OpenAIProvider) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: temperature,
			MaxTokens:   500,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Analyze(ctx context.Context, analysis AnalysisContext) (*Suggestion, error) {
	text, err := p.complete(ctx, buildAnalysisPrompt(analysis), 0.7)
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		return &Suggestion{Analysis: strings.TrimSpace(text)}, nil
	}
	var suggestion Suggestion
	if err := json.Unmarshal([]byte(jsonStr), &suggestion); err != nil {
		return &Suggestion{Analysis: strings.TrimSpace(text)}, nil
	}
	return &suggestion, nil
}

func (p *OpenAIProvider) Quote(ctx context.Context) (string, error) {
	text, err := p.complete(ctx, quotePrompt, 0.9)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.TrimSpace(text), `"`, ""), nil
}
