package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

func TestAdviceService_AnalyzePortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("renders advice and includes user data in the prompt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		gen := testutil.NewMockGenerator("**Спокойно.** Диверсифицируйте портфель.")
		svc := testutil.NewTestAdviceService(t, db, gen)
		user := testutil.CreateUser(t, db)
		asset := testutil.NewAsset(user.ID).WithSymbol("GAZP").Build(t, db)
		testutil.NewAnxietyLog(user.ID).WithEvent("Падение рынка").Build(t, db)
		testutil.NewTrade(user.ID, asset.ID).Build(t, db)

		advice, err := svc.AnalyzePortfolio(ctx, user.ID)
		if err != nil {
			t.Fatalf("AnalyzePortfolio() returned unexpected error: %v", err)
		}
		if advice.Text != "**Спокойно.** Диверсифицируйте портфель." {
			t.Errorf("Unexpected advice text: %q", advice.Text)
		}
		if !strings.Contains(advice.HTML, "<strong>Спокойно.</strong>") {
			t.Errorf("Expected rendered markdown, got %q", advice.HTML)
		}

		prompt := gen.Prompts[0]
		for _, want := range []string{"GAZP", "Падение рынка", "Russian", "under 300 characters"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("Expected prompt to contain %q", want)
			}
		}
	})

	t.Run("prompt only carries the acting user's data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		gen := testutil.NewMockGenerator("ok")
		svc := testutil.NewTestAdviceService(t, db, gen)
		alice := testutil.CreateUser(t, db)
		bob := testutil.CreateUser(t, db)
		testutil.NewAsset(bob.ID).WithSymbol("SECRET").Build(t, db)

		if _, err := svc.AnalyzePortfolio(ctx, alice.ID); err != nil {
			t.Fatalf("AnalyzePortfolio() returned unexpected error: %v", err)
		}
		if strings.Contains(gen.Prompts[0], "SECRET") {
			t.Error("Expected another user's holdings to stay out of the prompt")
		}
	})

	t.Run("generation failure maps to ErrAdviceFailed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		gen := testutil.NewMockGenerator("").WithError(errors.New("deadline exceeded"))
		svc := testutil.NewTestAdviceService(t, db, gen)
		user := testutil.CreateUser(t, db)

		_, err := svc.AnalyzePortfolio(ctx, user.ID)
		if !errors.Is(err, apperrors.ErrAdviceFailed) {
			t.Errorf("Expected ErrAdviceFailed, got %v", err)
		}
		if !errors.Is(err, apperrors.ErrGenerationFailed) {
			t.Errorf("Expected wrapped ErrGenerationFailed, got %v", err)
		}
	})
}
