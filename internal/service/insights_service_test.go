package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

func TestSentimentService_GetMarketSentiment(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults without data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSentimentService(t, db)

		s, err := svc.GetMarketSentiment(ctx)
		require.NoError(t, err)
		assert.Equal(t, service.DefaultSentimentAnxiety, s.Anxiety)
		require.Len(t, s.Reactions, 3)
		for i, rc := range s.Reactions {
			assert.Equal(t, model.ReactionTypes[i], rc.Type)
			assert.Zero(t, rc.Count)
		}
	})

	t.Run("averages the last seven days across users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSentimentService(t, db)
		a := testutil.CreateUser(t, db)
		b := testutil.CreateUser(t, db)
		testutil.NewAnxietyLog(a.ID).WithLevel(2).Build(t, db)
		testutil.NewAnxietyLog(b.ID).WithLevel(7).Build(t, db)
		testutil.NewAnxietyLog(a.ID).WithLevel(10).At(time.Now().Add(-10*24*time.Hour)).Build(t, db)
		post := testutil.NewPost(a.ID).Build(t, db)
		testutil.CreateReaction(t, db, post.ID, a.ID, model.ReactionHorror)
		testutil.CreateReaction(t, db, post.ID, b.ID, model.ReactionHorror)

		s, err := svc.GetMarketSentiment(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4.5, s.Anxiety)
		assert.Equal(t, model.ReactionCount{Type: model.ReactionHorror, Count: 2}, s.Reactions[2])
		assert.Zero(t, s.Reactions[0].Count)
	})
}

func TestGoalProgress(t *testing.T) {
	assert.Equal(t, 50.0, service.GoalProgress(50, 100))
	assert.Equal(t, 100.0, service.GoalProgress(250, 100))
	assert.Equal(t, 0.0, service.GoalProgress(10, 0))
	assert.Equal(t, 33.33, service.GoalProgress(1, 3))
}

// TestGoalService_SyncProgress tests goal recomputation from live data.
func TestGoalService_SyncProgress(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestGoalService(t, db)
	user := testutil.CreateUser(t, db)

	testutil.NewAsset(user.ID).WithPosition(10, 100).WithSector("Энергетика").Build(t, db)
	testutil.NewAsset(user.ID).WithPosition(5, 100).WithSector("Финансы").Build(t, db)
	testutil.NewAsset(user.ID).WithPosition(1, 1).WithSector("").Build(t, db)
	testutil.NewAnxietyLog(user.ID).Build(t, db)

	value := testutil.NewGoal(user.ID).WithType(model.GoalTypePortfolioValue, 1000).Build(t, db)
	sectors := testutil.NewGoal(user.ID).WithType(model.GoalTypeSectorsCount, 5).Build(t, db)
	streak := testutil.NewGoal(user.ID).WithType(model.GoalTypeStreak, 1).Build(t, db)

	result, err := svc.SyncProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Updated)
	assert.Equal(t, 2, result.Completed)

	goals, err := svc.GetGoals(ctx, user.ID)
	require.NoError(t, err)
	byID := map[int64]model.Goal{}
	for _, g := range goals {
		byID[g.ID] = g
	}

	assert.Equal(t, 1501.0, byID[value.ID].CurrentValue)
	assert.True(t, byID[value.ID].IsCompleted)
	assert.Equal(t, 100.0, byID[value.ID].Progress)

	assert.Equal(t, 2.0, byID[sectors.ID].CurrentValue)
	assert.False(t, byID[sectors.ID].IsCompleted)
	assert.Equal(t, 40.0, byID[sectors.ID].Progress)

	assert.Equal(t, 1.0, byID[streak.ID].CurrentValue)
	assert.True(t, byID[streak.ID].IsCompleted)
}

func TestGoalService_SyncAll(t *testing.T) {
	db := testutil.SetupSeededTestDB(t)
	svc := testutil.NewTestGoalService(t, db)

	results, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].Updated)
	assert.Equal(t, 0, results[1].Updated)

	achievements, err := svc.GetAchievements(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, achievements, 3)
}

func TestSystemService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSystemService(t, db)

	health := svc.CheckHealth(context.Background())
	assert.True(t, health.Healthy())
	assert.Equal(t, "fallback", health.AI)

	info, err := svc.CheckVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", info.DbVersion)
	assert.False(t, info.MigrationNeeded)
	assert.Nil(t, info.MigrationMessage)
	assert.Contains(t, info.Features, "ai_advice")

	db.Close()
	health = svc.CheckHealth(context.Background())
	assert.False(t, health.Healthy())
	assert.Equal(t, "disconnected", health.Database)
	assert.NotEmpty(t, health.Error)
}
