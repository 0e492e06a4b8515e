package model

import "time"

// Goal types accepted by the goals CHECK constraint.
const (
	GoalTypePortfolioValue = "portfolio_value"
	GoalTypeSectorsCount   = "sectors_count"
	GoalTypeStreak         = "streak"
)

// Goal is a user target with derived progress percentage.
type Goal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Type         string    `json:"type"`
	IsCompleted  bool      `json:"is_completed"`
	Progress     float64   `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
}

// Achievement is an unlocked badge.
type Achievement struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// Digest sources.
const (
	DigestSourceCache     = "cache"
	DigestSourceGenerated = "generated"
	DigestSourceStale     = "stale"
	DigestSourceFallback  = "fallback"
)

// Digest is the daily market summary. ID and CreatedAt are zero for the
// built-in fallback text.
type Digest struct {
	ID        int64      `json:"id,omitempty"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Source    string     `json:"source"`
}

// MarketSentiment combines the community anxiety average and reaction mix.
type MarketSentiment struct {
	Anxiety   float64         `json:"anxiety"`
	Reactions []ReactionCount `json:"reactions"`
}

// Advice is generated portfolio guidance. HTML is the rendered markdown.
type Advice struct {
	Text string `json:"advice"`
	HTML string `json:"html"`
}

// GoalSyncResult reports how many goals were recomputed for a user.
type GoalSyncResult struct {
	UserID    int64 `json:"user_id"`
	Updated   int   `json:"updated"`
	Completed int   `json:"completed"`
}
