package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// GoalService handles goals, achievements and goal progress sync.
type GoalService struct {
	db          *sql.DB
	goalRepo    *repository.GoalRepository
	assetRepo   *repository.AssetRepository
	anxietyRepo *repository.AnxietyRepository
	userRepo    *repository.UserRepository
	metrics     *metrics.Metrics
}

// NewGoalService creates a new GoalService with the provided repository dependencies.
func NewGoalService(
	db *sql.DB,
	goalRepo *repository.GoalRepository,
	assetRepo *repository.AssetRepository,
	anxietyRepo *repository.AnxietyRepository,
	userRepo *repository.UserRepository,
	m *metrics.Metrics,
) *GoalService {
	return &GoalService{
		db:          db,
		goalRepo:    goalRepo,
		assetRepo:   assetRepo,
		anxietyRepo: anxietyRepo,
		userRepo:    userRepo,
		metrics:     m,
	}
}

// GoalProgress returns current as a percentage of target, capped to [0, 100].
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round(math.Max(0, math.Min(current/target*100, 100)))
}

// GetGoals retrieves the goals of a user with their progress filled in.
func (s *GoalService) GetGoals(ctx context.Context, userID int64) ([]model.Goal, error) {
	goals, err := s.goalRepo.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].Progress = GoalProgress(goals[i].CurrentValue, goals[i].TargetValue)
	}
	return goals, nil
}

// GetAchievements retrieves the achievements of a user.
func (s *GoalService) GetAchievements(ctx context.Context, userID int64) ([]model.Achievement, error) {
	return s.goalRepo.GetAchievements(ctx, userID)
}

// SyncProgress recomputes current_value and is_completed of every goal of
// userID from live data, in one transaction.
func (s *GoalService) SyncProgress(ctx context.Context, userID int64) (model.GoalSyncResult, error) {
	assets, err := s.assetRepo.GetAssets(ctx, userID)
	if err != nil {
		return model.GoalSyncResult{}, err
	}
	logCount, err := s.anxietyRepo.CountLogs(ctx, userID)
	if err != nil {
		return model.GoalSyncResult{}, err
	}

	live := map[string]float64{
		model.GoalTypePortfolioValue: round(TotalValue(assets)),
		model.GoalTypeSectorsCount:   float64(SectorCount(assets)),
		model.GoalTypeStreak:         float64(logCount),
	}

	result := model.GoalSyncResult{UserID: userID}
	err = withTx(ctx, s.db, func(tx *sql.Tx) error {
		goalRepo := s.goalRepo.WithTx(tx)
		goals, err := goalRepo.GetGoals(ctx, userID)
		if err != nil {
			return err
		}
		for _, g := range goals {
			current, ok := live[g.Type]
			if !ok {
				continue
			}
			completed := current >= g.TargetValue
			if err := goalRepo.UpdateGoalProgress(ctx, g.ID, current, completed); err != nil {
				return err
			}
			result.Updated++
			if completed {
				result.Completed++
			}
		}
		return nil
	})
	if err != nil {
		return model.GoalSyncResult{}, err
	}
	return result, nil
}

// SyncAll runs SyncProgress for every user. It stops at the first failure.
func (s *GoalService) SyncAll(ctx context.Context) (results []model.GoalSyncResult, err error) {
	defer func() { s.metrics.ObserveGoalSync(err) }()

	userIDs, err := s.userRepo.GetUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	results = make([]model.GoalSyncResult, 0, len(userIDs))
	for _, id := range userIDs {
		r, err := s.SyncProgress(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to sync goals for user %d: %w", id, err)
		}
		results = append(results, r)
	}
	return results, nil
}
