// Package app wires configuration, storage, the text generator and the
// service layer together for the server and the vibectl CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ndewijer/VibeInvestor-Backend/internal/ai"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api"
	"github.com/ndewijer/VibeInvestor-Backend/internal/config"
	"github.com/ndewijer/VibeInvestor-Backend/internal/database"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
	"github.com/ndewijer/VibeInvestor-Backend/internal/secret"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// App holds the opened database and every service built on it.
type App struct {
	Config   *config.Config
	DB       *sql.DB
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Services api.Services
}

// Features reports which optional capabilities cfg enables.
func Features(cfg *config.Config) map[string]bool {
	return map[string]bool{
		"ai_advice":          cfg.AI.Enabled(),
		"journal_encryption": cfg.Journal.EncryptionKey != "",
		"goal_sync":          cfg.Jobs.GoalSyncSchedule != "",
	}
}

// New opens the database and builds repositories and services. It does not
// migrate; callers decide when the schema is applied.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	box, err := secret.NewBox(cfg.Journal.EncryptionKey)
	if err != nil {
		db.Close()
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Journal.CalendarTimezone)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid calendar timezone: %w", err)
	}

	var generator ai.Generator = ai.Unavailable{}
	if cfg.AI.Enabled() {
		gemini, err := ai.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)
		if err != nil {
			db.Close()
			return nil, err
		}
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; advice and digest generation disabled")
	}

	m := metrics.New()

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	anxietyRepo := repository.NewAnxietyRepository(db)
	postRepo := repository.NewPostRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	savedIdeaRepo := repository.NewSavedIdeaRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	digestRepo := repository.NewDigestRepository(db)

	// Create services
	svc := api.Services{
		System:    service.NewSystemService(db, Features(cfg)),
		Portfolio: service.NewPortfolioService(assetRepo),
		Trade:     service.NewTradeService(db, tradeRepo, assetRepo, box, m),
		Anxiety:   service.NewAnxietyService(anxietyRepo, tradeRepo, loc),
		Feed:      service.NewFeedService(db, postRepo, reactionRepo, savedIdeaRepo),
		User:      service.NewUserService(db, userRepo, assetRepo, postRepo, subscriptionRepo),
		Advice: service.NewAdviceService(
			assetRepo, anxietyRepo, tradeRepo, generator, cfg.AI.Language, m, logger.Named("advice"),
		),
		Sentiment: service.NewSentimentService(anxietyRepo, reactionRepo),
		Goal:      service.NewGoalService(db, goalRepo, assetRepo, anxietyRepo, userRepo, m),
		Digest:    service.NewDigestService(digestRepo, generator, m, logger.Named("digest")),
	}

	return &App{
		Config:   cfg,
		DB:       db,
		Logger:   logger,
		Metrics:  m,
		Services: svc,
	}, nil
}

// Prepare applies pending migrations and, when configured, the demo seed.
func (a *App) Prepare(ctx context.Context) error {
	if _, err := database.Migrate(ctx, a.DB, a.Logger); err != nil {
		return err
	}
	if a.Config.Demo.Seed {
		if err := database.Seed(ctx, a.DB); err != nil {
			return err
		}
		a.Logger.Info("demo data seeded")
	}
	return nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
