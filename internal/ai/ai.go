// Package ai wraps the external text generator used for portfolio advice and
// the market digest.
package ai

import (
	"context"
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
)

// Generator produces text for a prompt. Implementations make a single attempt
// and report every failure as apperrors.ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unavailable is the Generator wired when no API key is configured.
type Unavailable struct{}

// Generate always fails.
func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", apperrors.ErrGenerationFailed, apperrors.ErrGeneratorUnavailable)
}
