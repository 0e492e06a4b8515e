package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ndewijer/VibeInvestor-Backend/internal/ai"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// DigestTTL is how long a stored digest is served without regeneration.
const DigestTTL = 24 * time.Hour

// FallbackDigest is returned when generation fails and nothing is stored.
const FallbackDigest = "Рынок стабилен. Следите за новостями."

const digestPrompt = "Generate a brief, 3-sentence summary of current global market trends for an investor, in Russian. Focus on being helpful and concise."

// DigestService serves the daily market digest from the store, regenerating it lazily.
type DigestService struct {
	digestRepo *repository.DigestRepository
	generator  ai.Generator
	metrics    *metrics.Metrics
	logger     *zap.Logger
	flight     singleflight.Group
	now        func() time.Time
}

// NewDigestService creates a new DigestService.
func NewDigestService(
	digestRepo *repository.DigestRepository,
	generator ai.Generator,
	m *metrics.Metrics,
	logger *zap.Logger,
) *DigestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DigestService{
		digestRepo: digestRepo,
		generator:  generator,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// GetDigest returns the newest digest if it is at most DigestTTL old.
// Otherwise it generates a new one; concurrent callers share a single
// generation. On failure it falls back to the stale row, then to FallbackDigest.
// Only store errors are returned.
func (s *DigestService) GetDigest(ctx context.Context) (model.Digest, error) {
	existing, err := s.digestRepo.GetLatestDigest(ctx)
	found := err == nil
	if err != nil && !errors.Is(err, apperrors.ErrDigestNotFound) {
		return model.Digest{}, err
	}

	if found && !s.isStale(existing) {
		existing.Source = model.DigestSourceCache
		s.metrics.ObserveDigest(existing.Source)
		return existing, nil
	}

	v, err, _ := s.flight.Do("digest", func() (any, error) {
		return s.generate(context.WithoutCancel(ctx))
	})
	if err == nil {
		digest := v.(model.Digest)
		digest.Source = model.DigestSourceGenerated
		s.metrics.ObserveDigest(digest.Source)
		return digest, nil
	}

	s.logger.Warn("digest generation failed", zap.Error(err))
	if found {
		existing.Source = model.DigestSourceStale
		s.metrics.ObserveDigest(existing.Source)
		return existing, nil
	}

	s.metrics.ObserveDigest(model.DigestSourceFallback)
	return model.Digest{Content: FallbackDigest, Source: model.DigestSourceFallback}, nil
}

func (s *DigestService) isStale(d model.Digest) bool {
	if d.CreatedAt == nil {
		return true
	}
	return s.now().Sub(*d.CreatedAt) > DigestTTL
}

func (s *DigestService) generate(ctx context.Context) (model.Digest, error) {
	content, err := s.generator.Generate(ctx, digestPrompt)
	s.metrics.ObserveGeneration("digest", err)
	if err != nil {
		return model.Digest{}, err
	}
	return s.digestRepo.InsertDigest(ctx, content, s.now())
}
