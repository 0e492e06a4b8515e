package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/database"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

func stamp(t time.Time) string {
	return t.UTC().Format(database.TimeLayout)
}

func lastID(t *testing.T, res sql.Result, what string) int64 {
	t.Helper()
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read %s id: %v", what, err)
	}
	return id
}

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	user := testutil.NewUser().WithUsername("alice").Build(t, db)
type UserBuilder struct {
	Username string
}

// NewUser creates a UserBuilder with a unique username.
func NewUser() *UserBuilder {
	return &UserBuilder{Username: MakeUsername("investor")}
}

// WithUsername sets a custom username.
func (b *UserBuilder) WithUsername(name string) *UserBuilder {
	b.Username = name
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := db.Exec(`INSERT INTO users (username, created_at) VALUES (?, ?)`, b.Username, stamp(now))
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return model.User{ID: lastID(t, res, "user"), Username: b.Username, CreatedAt: now}
}

// CreateUser creates a user with a generated username.
func CreateUser(t *testing.T, db *sql.DB) model.User {
	t.Helper()
	return NewUser().Build(t, db)
}

// AssetBuilder provides a fluent interface for creating test portfolio assets.
//
// Example usage:
//
//	asset := testutil.NewAsset(user.ID).
//	    WithSymbol("SBER").
//	    WithPosition(10, 250).
//	    WithSector("Финансы").
//	    Build(t, db)
type AssetBuilder struct {
	UserID   int64
	Type     string
	Symbol   string
	Name     string
	Quantity float64
	AvgPrice float64
	Sector   string
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset(userID int64) *AssetBuilder {
	symbol := MakeSymbol("TST")
	return &AssetBuilder{
		UserID:   userID,
		Type:     model.AssetTypeStock,
		Symbol:   symbol,
		Name:     symbol + " Corp",
		Quantity: 10,
		AvgPrice: 100,
		Sector:   "Технологии",
	}
}

// WithType sets the asset type.
func (b *AssetBuilder) WithType(assetType string) *AssetBuilder {
	b.Type = assetType
	return b
}

// WithSymbol sets the ticker symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.Symbol = symbol
	return b
}

// WithPosition sets quantity and average price.
func (b *AssetBuilder) WithPosition(quantity, avgPrice float64) *AssetBuilder {
	b.Quantity = quantity
	b.AvgPrice = avgPrice
	return b
}

// WithSector sets the sector.
func (b *AssetBuilder) WithSector(sector string) *AssetBuilder {
	b.Sector = sector
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := db.Exec(`
		INSERT INTO portfolio_assets (user_id, type, symbol, name, quantity, avg_price, sector, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.UserID, b.Type, b.Symbol, b.Name, b.Quantity, b.AvgPrice, b.Sector, stamp(now))
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:        lastID(t, res, "asset"),
		UserID:    b.UserID,
		Type:      b.Type,
		Symbol:    b.Symbol,
		Name:      b.Name,
		Quantity:  b.Quantity,
		AvgPrice:  b.AvgPrice,
		Sector:    b.Sector,
		UpdatedAt: now,
	}
}

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	trade := testutil.NewTrade(user.ID, asset.ID).
//	    Sell().
//	    WithPrice(90).
//	    WithCommission(50).
//	    At(time.Now().Add(-48 * time.Hour)).
//	    Build(t, db)
type TradeBuilder struct {
	UserID     int64
	AssetID    int64
	Type       string
	Quantity   float64
	Price      float64
	Commission float64
	Mood       string
	Note       string
	CreatedAt  time.Time
}

// NewTrade creates a TradeBuilder for a buy of one unit at 100, created now.
func NewTrade(userID, assetID int64) *TradeBuilder {
	return &TradeBuilder{
		UserID:    userID,
		AssetID:   assetID,
		Type:      model.TradeTypeBuy,
		Quantity:  1,
		Price:     100,
		Mood:      "calm",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Sell marks the trade as a sell.
func (b *TradeBuilder) Sell() *TradeBuilder {
	b.Type = model.TradeTypeSell
	return b
}

// WithPrice sets the execution price.
func (b *TradeBuilder) WithPrice(price float64) *TradeBuilder {
	b.Price = price
	return b
}

// WithQuantity sets the quantity.
func (b *TradeBuilder) WithQuantity(quantity float64) *TradeBuilder {
	b.Quantity = quantity
	return b
}

// WithCommission sets the commission.
func (b *TradeBuilder) WithCommission(commission float64) *TradeBuilder {
	b.Commission = commission
	return b
}

// At sets the creation time.
func (b *TradeBuilder) At(createdAt time.Time) *TradeBuilder {
	b.CreatedAt = createdAt.UTC().Truncate(time.Second)
	return b
}

// Build creates the trade in the database and returns it.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO trades (user_id, asset_id, type, quantity, price, commission, mood, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.UserID, b.AssetID, b.Type, b.Quantity, b.Price, b.Commission, b.Mood, b.Note, stamp(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	return model.Trade{
		ID:         lastID(t, res, "trade"),
		UserID:     b.UserID,
		AssetID:    b.AssetID,
		Type:       b.Type,
		Quantity:   b.Quantity,
		Price:      b.Price,
		Commission: b.Commission,
		Mood:       b.Mood,
		Note:       b.Note,
		CreatedAt:  b.CreatedAt,
	}
}

// AnxietyLogBuilder provides a fluent interface for creating test mood entries.
type AnxietyLogBuilder struct {
	UserID    int64
	Level     int
	Event     string
	CreatedAt time.Time
}

// NewAnxietyLog creates an AnxietyLogBuilder with level 5, created now.
func NewAnxietyLog(userID int64) *AnxietyLogBuilder {
	return &AnxietyLogBuilder{
		UserID:    userID,
		Level:     5,
		Event:     "Test event",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// WithLevel sets the anxiety level.
func (b *AnxietyLogBuilder) WithLevel(level int) *AnxietyLogBuilder {
	b.Level = level
	return b
}

// WithEvent sets the event text.
func (b *AnxietyLogBuilder) WithEvent(event string) *AnxietyLogBuilder {
	b.Event = event
	return b
}

// At sets the creation time.
func (b *AnxietyLogBuilder) At(createdAt time.Time) *AnxietyLogBuilder {
	b.CreatedAt = createdAt.UTC().Truncate(time.Second)
	return b
}

// Build creates the log in the database and returns it.
func (b *AnxietyLogBuilder) Build(t *testing.T, db *sql.DB) model.AnxietyLog {
	t.Helper()

	res, err := db.Exec(`INSERT INTO anxiety_logs (user_id, level, event, created_at) VALUES (?, ?, ?, ?)`,
		b.UserID, b.Level, b.Event, stamp(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test anxiety log: %v", err)
	}

	return model.AnxietyLog{
		ID:        lastID(t, res, "anxiety log"),
		UserID:    b.UserID,
		Level:     b.Level,
		Event:     b.Event,
		CreatedAt: b.CreatedAt,
	}
}

// PostBuilder provides a fluent interface for creating test posts.
type PostBuilder struct {
	UserID    int64
	Content   string
	TradeID   *int64
	CreatedAt time.Time
}

// NewPost creates a PostBuilder with plain content, created now.
func NewPost(userID int64) *PostBuilder {
	return &PostBuilder{
		UserID:    userID,
		Content:   "Test post " + randomAlphanumeric(6),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// WithContent sets the post body.
func (b *PostBuilder) WithContent(content string) *PostBuilder {
	b.Content = content
	return b
}

// SharingTrade marks the post as a trade share referencing tradeID.
func (b *PostBuilder) SharingTrade(tradeID int64) *PostBuilder {
	b.TradeID = &tradeID
	return b
}

// At sets the creation time.
func (b *PostBuilder) At(createdAt time.Time) *PostBuilder {
	b.CreatedAt = createdAt.UTC().Truncate(time.Second)
	return b
}

// Build creates the post in the database and returns it. Username is left empty.
func (b *PostBuilder) Build(t *testing.T, db *sql.DB) model.Post {
	t.Helper()

	res, err := db.Exec(`INSERT INTO posts (user_id, content, is_trade_share, trade_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		b.UserID, b.Content, b.TradeID != nil, b.TradeID, stamp(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return model.Post{
		ID:           lastID(t, res, "post"),
		UserID:       b.UserID,
		Content:      b.Content,
		IsTradeShare: b.TradeID != nil,
		TradeID:      b.TradeID,
		CreatedAt:    b.CreatedAt,
	}
}

// CreateComment inserts a comment by userID on postID at createdAt.
func CreateComment(t *testing.T, db *sql.DB, postID, userID int64, content string, createdAt time.Time) model.Comment {
	t.Helper()

	res, err := db.Exec(`INSERT INTO comments (post_id, user_id, content, created_at) VALUES (?, ?, ?, ?)`,
		postID, userID, content, stamp(createdAt))
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return model.Comment{
		ID:        lastID(t, res, "comment"),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: createdAt.UTC().Truncate(time.Second),
	}
}

// CreateReaction inserts a reaction row directly.
func CreateReaction(t *testing.T, db *sql.DB, postID, userID int64, reactionType string) {
	t.Helper()

	if _, err := db.Exec(`INSERT INTO reactions (post_id, user_id, type) VALUES (?, ?, ?)`, postID, userID, reactionType); err != nil {
		t.Fatalf("Failed to create test reaction: %v", err)
	}
}

// CreateSubscription makes followerID follow followingID.
func CreateSubscription(t *testing.T, db *sql.DB, followerID, followingID int64) {
	t.Helper()

	if _, err := db.Exec(`INSERT INTO subscriptions (follower_id, following_id) VALUES (?, ?)`, followerID, followingID); err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}
}

// GoalBuilder provides a fluent interface for creating test goals.
type GoalBuilder struct {
	UserID  int64
	Title   string
	Type    string
	Target  float64
	Current float64
}

// NewGoal creates a GoalBuilder for a portfolio value goal.
func NewGoal(userID int64) *GoalBuilder {
	return &GoalBuilder{
		UserID: userID,
		Title:  "Test goal",
		Type:   model.GoalTypePortfolioValue,
		Target: 1000,
	}
}

// WithType sets the goal type and target.
func (b *GoalBuilder) WithType(goalType string, target float64) *GoalBuilder {
	b.Type = goalType
	b.Target = target
	return b
}

// WithCurrent sets the stored current value.
func (b *GoalBuilder) WithCurrent(current float64) *GoalBuilder {
	b.Current = current
	return b
}

// Build creates the goal in the database and returns it.
func (b *GoalBuilder) Build(t *testing.T, db *sql.DB) model.Goal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := db.Exec(`
		INSERT INTO goals (user_id, title, target_value, current_value, type, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)
	`, b.UserID, b.Title, b.Target, b.Current, b.Type, stamp(now))
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return model.Goal{
		ID:           lastID(t, res, "goal"),
		UserID:       b.UserID,
		Title:        b.Title,
		TargetValue:  b.Target,
		CurrentValue: b.Current,
		Type:         b.Type,
		CreatedAt:    now,
	}
}

// CreateDigest stores a digest with the given age.
//
// Example usage:
//
//	testutil.CreateDigest(t, db, "Old news", 25*time.Hour)
func CreateDigest(t *testing.T, db *sql.DB, content string, age time.Duration) model.Digest {
	t.Helper()

	createdAt := time.Now().Add(-age).UTC().Truncate(time.Second)
	res, err := db.Exec(`INSERT INTO vibe_digest (content, created_at) VALUES (?, ?)`, content, stamp(createdAt))
	if err != nil {
		t.Fatalf("Failed to create test digest: %v", err)
	}
	return model.Digest{ID: lastID(t, res, "digest"), Content: content, CreatedAt: &createdAt}
}
