package service

import (
	"context"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// Sentiment defaults and window.
const (
	SentimentWindow         = 7 * 24 * time.Hour
	DefaultSentimentAnxiety = 5.0
)

// SentimentService aggregates community mood across all users.
type SentimentService struct {
	anxietyRepo  *repository.AnxietyRepository
	reactionRepo *repository.ReactionRepository
}

// NewSentimentService creates a new SentimentService.
func NewSentimentService(anxietyRepo *repository.AnxietyRepository, reactionRepo *repository.ReactionRepository) *SentimentService {
	return &SentimentService{
		anxietyRepo:  anxietyRepo,
		reactionRepo: reactionRepo,
	}
}

// GetMarketSentiment returns the average anxiety level of the last seven days
// (DefaultSentimentAnxiety without data) and global counts for every reaction type.
func (s *SentimentService) GetMarketSentiment(ctx context.Context) (model.MarketSentiment, error) {
	avg, ok, err := s.anxietyRepo.AverageLevelSince(ctx, time.Now().Add(-SentimentWindow))
	if err != nil {
		return model.MarketSentiment{}, err
	}
	if !ok {
		avg = DefaultSentimentAnxiety
	}

	counts, err := s.reactionRepo.GetReactionCounts(ctx)
	if err != nil {
		return model.MarketSentiment{}, err
	}

	return model.MarketSentiment{
		Anxiety:   round(avg),
		Reactions: completeReactionCounts(counts),
	}, nil
}

func completeReactionCounts(counts []model.ReactionCount) []model.ReactionCount {
	byType := make(map[string]int, len(counts))
	for _, c := range counts {
		byType[c.Type] = c.Count
	}
	out := make([]model.ReactionCount, len(model.ReactionTypes))
	for i, t := range model.ReactionTypes {
		out[i] = model.ReactionCount{Type: t, Count: byType[t]}
	}
	return out
}
