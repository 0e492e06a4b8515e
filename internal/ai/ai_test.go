package ai

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
)

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Generate(context.Background(), "anything")
	if !errors.Is(err, apperrors.ErrGenerationFailed) {
		t.Errorf("Expected ErrGenerationFailed, got %v", err)
	}
	if !errors.Is(err, apperrors.ErrGeneratorUnavailable) {
		t.Errorf("Expected ErrGeneratorUnavailable, got %v", err)
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"joins text parts and skips thoughts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "thinking...", Thought: true},
					{Text: " Рынок "},
					{Text: "спокоен. "},
				}},
			}}},
			"Рынок спокоен.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.resp); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
