package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/ai"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
	"github.com/ndewijer/VibeInvestor-Backend/internal/secret"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// CalendarLocation is the zone used by calendar tests.
var CalendarLocation = mustLoad("Europe/Moscow")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(repository.NewAssetRepository(db))
}

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	box, err := secret.NewBox("")
	if err != nil {
		t.Fatalf("Failed to create pass-through box: %v", err)
	}
	return NewTestTradeServiceWithBox(t, db, box)
}

// NewTestTradeServiceWithBox creates a TradeService that seals analysis text with box.
func NewTestTradeServiceWithBox(t *testing.T, db *sql.DB, box *secret.Box) *service.TradeService {
	t.Helper()

	return service.NewTradeService(
		db,
		repository.NewTradeRepository(db),
		repository.NewAssetRepository(db),
		box,
		nil,
	)
}

func NewTestAnxietyService(t *testing.T, db *sql.DB) *service.AnxietyService {
	t.Helper()

	return service.NewAnxietyService(
		repository.NewAnxietyRepository(db),
		repository.NewTradeRepository(db),
		CalendarLocation,
	)
}

func NewTestFeedService(t *testing.T, db *sql.DB) *service.FeedService {
	t.Helper()

	return service.NewFeedService(
		db,
		repository.NewPostRepository(db),
		repository.NewReactionRepository(db),
		repository.NewSavedIdeaRepository(db),
	)
}

func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	return service.NewUserService(
		db,
		repository.NewUserRepository(db),
		repository.NewAssetRepository(db),
		repository.NewPostRepository(db),
		repository.NewSubscriptionRepository(db),
	)
}

// NewTestAdviceService creates an AdviceService answering through generator.
func NewTestAdviceService(t *testing.T, db *sql.DB, generator ai.Generator) *service.AdviceService {
	t.Helper()

	return service.NewAdviceService(
		repository.NewAssetRepository(db),
		repository.NewAnxietyRepository(db),
		repository.NewTradeRepository(db),
		generator,
		"Russian",
		nil,
		nil,
	)
}

// NewTestDigestService creates a DigestService answering through generator.
func NewTestDigestService(t *testing.T, db *sql.DB, generator ai.Generator) *service.DigestService {
	t.Helper()

	return service.NewDigestService(repository.NewDigestRepository(db), generator, nil, nil)
}

func NewTestSentimentService(t *testing.T, db *sql.DB) *service.SentimentService {
	t.Helper()

	return service.NewSentimentService(repository.NewAnxietyRepository(db), repository.NewReactionRepository(db))
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	return service.NewGoalService(
		db,
		repository.NewGoalRepository(db),
		repository.NewAssetRepository(db),
		repository.NewAnxietyRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, map[string]bool{"ai_advice": false})
}

// MakeSymbol generates a stock ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("SBER")
//	// Returns: "SBER1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// MakeUsername generates a unique username for testing.
//
// Example usage:
//
//	name := testutil.MakeUsername("trader")
//	// Returns: "trader_ABC123"
func MakeUsername(base string) string {
	if base == "" {
		base = "user"
	}
	return base + "_" + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
