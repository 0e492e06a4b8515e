package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/VibeInvestor-Backend/internal/ai"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// AdviceContextLimit bounds how many recent logs and trades go into the prompt.
const AdviceContextLimit = 10

// AdviceService turns a user's portfolio and mood history into short advice.
type AdviceService struct {
	assetRepo   *repository.AssetRepository
	anxietyRepo *repository.AnxietyRepository
	tradeRepo   *repository.TradeRepository
	generator   ai.Generator
	language    string
	markdown    goldmark.Markdown
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewAdviceService creates a new AdviceService. language names the reply language used in the prompt.
func NewAdviceService(
	assetRepo *repository.AssetRepository,
	anxietyRepo *repository.AnxietyRepository,
	tradeRepo *repository.TradeRepository,
	generator ai.Generator,
	language string,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AdviceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdviceService{
		assetRepo:   assetRepo,
		anxietyRepo: anxietyRepo,
		tradeRepo:   tradeRepo,
		generator:   generator,
		language:    language,
		markdown:    goldmark.New(),
		metrics:     m,
		logger:      logger,
	}
}

// AnalyzePortfolio loads the user's assets, last logs and last trades in
// parallel and asks the generator for advice. Any generation failure is
// returned as ErrAdviceFailed; the cause is only logged.
func (s *AdviceService) AnalyzePortfolio(ctx context.Context, userID int64) (model.Advice, error) {
	var (
		assets []model.Asset
		logs   []model.AnxietyLog
		trades []model.Trade
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = s.assetRepo.GetAssets(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.anxietyRepo.GetRecentLogs(gctx, userID, AdviceContextLimit)
		return err
	})
	g.Go(func() error {
		var err error
		trades, err = s.tradeRepo.GetRecentTrades(gctx, userID, AdviceContextLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Advice{}, err
	}

	prompt, err := s.buildPrompt(assets, logs, trades)
	if err != nil {
		return model.Advice{}, err
	}

	text, err := s.generator.Generate(ctx, prompt)
	s.metrics.ObserveGeneration("advice", err)
	if err != nil {
		s.logger.Warn("advice generation failed", zap.Int64("user_id", userID), zap.Error(err))
		return model.Advice{}, fmt.Errorf("%w: %w", apperrors.ErrAdviceFailed, err)
	}

	var html bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &html); err != nil {
		return model.Advice{}, fmt.Errorf("failed to render advice: %w", err)
	}

	return model.Advice{Text: text, HTML: html.String()}, nil
}

func (s *AdviceService) buildPrompt(assets []model.Asset, logs []model.AnxietyLog, trades []model.Trade) (string, error) {
	portfolio, err := json.Marshal(assets)
	if err != nil {
		return "", fmt.Errorf("failed to encode portfolio: %w", err)
	}
	moods, err := json.Marshal(logs)
	if err != nil {
		return "", fmt.Errorf("failed to encode anxiety logs: %w", err)
	}
	recent, err := json.Marshal(trades)
	if err != nil {
		return "", fmt.Errorf("failed to encode trades: %w", err)
	}

	var b strings.Builder
	b.WriteString("Analyze this user's portfolio and emotional state.\n")
	fmt.Fprintf(&b, "Portfolio: %s\n", portfolio)
	fmt.Fprintf(&b, "Recent Anxiety Logs: %s\n", moods)
	fmt.Fprintf(&b, "Recent Trades: %s\n\n", recent)
	fmt.Fprintf(&b, "Provide brief, friendly and actionable advice in %s.\n", s.language)
	b.WriteString("Focus on the connection between their emotional state and their investment choices.\n")
	b.WriteString("Keep it under 300 characters.")
	return b.String(), nil
}
