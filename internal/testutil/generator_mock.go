package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
)

// MockGenerator is a mock implementation of ai.Generator for testing.
// It returns a predefined response instead of calling the external model.
type MockGenerator struct {
	mu sync.Mutex
	// Response is returned from Generate when Err is nil
	Response string
	// Err is returned from Generate, wrapped as ErrGenerationFailed
	Err error
	// Prompts records every prompt received
	Prompts []string
	// Block, when set, is waited on before answering
	Block chan struct{}
}

// NewMockGenerator creates a mock generator that answers with response.
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

// WithError configures the mock to fail with the specified error.
func (m *MockGenerator) WithError(err error) *MockGenerator {
	m.Err = err
	return m
}

// Generate records the prompt and returns the configured response or error.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", apperrors.ErrGenerationFailed, ctx.Err())
		}
	}

	if m.Err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrGenerationFailed, m.Err)
	}
	return m.Response, nil
}

// CallCount reports how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
