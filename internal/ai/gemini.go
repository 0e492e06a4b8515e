package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
)

// persona is sent as the system instruction on every call.
const persona = `You are Vibe, a calm and supportive investing companion inside a personal investing journal.
Answer concisely. Never promise returns and never give instructions to buy or sell a specific security.`

// GeminiClient generates text with the Gemini API.
type GeminiClient struct {
	models  *genai.Models
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a client for the given model. Every Generate call
// is bounded by timeout in addition to the caller's context.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiClient{
		models:  client.Models,
		model:   model,
		timeout: timeout,
	}, nil
}

// Generate sends prompt once and returns the concatenated text parts of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: persona}}},
	}
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrGenerationFailed, err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", apperrors.ErrGenerationFailed, c.model)
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
