package model

import "time"

// Reaction types in their fixed display order.
const (
	ReactionLike      = "like"
	ReactionHandshake = "handshake"
	ReactionHorror    = "horror"
)

// ReactionTypes lists the reaction types in the order they are always reported.
var ReactionTypes = []string{ReactionLike, ReactionHandshake, ReactionHorror}

// Toggle outcomes.
const (
	ActionAdded        = "added"
	ActionRemoved      = "removed"
	ActionSubscribed   = "subscribed"
	ActionUnsubscribed = "unsubscribed"
	ActionSaved        = "saved"
	ActionUnsaved      = "unsaved"
)

// FeedFilterSubscriptions restricts the feed to followed authors.
const FeedFilterSubscriptions = "subscriptions"

// User is a journal owner.
type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	TelegramID *string   `json:"telegram_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Post is a feed entry joined with its author's username.
type Post struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Content      string    `json:"content"`
	IsTradeShare bool      `json:"is_trade_share"`
	TradeID      *int64    `json:"trade_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Comment is a reply on a post joined with the commenter's username.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionSummary is the count of one reaction type on a post and whether
// the viewer is among the reactors.
type ReactionSummary struct {
	Type        string `json:"type"`
	Count       int    `json:"count"`
	UserReacted bool   `json:"user_reacted"`
}

// ReactionCount is a global count of one reaction type.
type ReactionCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// FeedPost is a post with its comments, reaction summary and saved flag.
type FeedPost struct {
	Post
	Comments  []Comment         `json:"comments"`
	Reactions []ReactionSummary `json:"reactions"`
	Saved     bool              `json:"saved"`
}

// SavedIdea is a bookmarked post.
type SavedIdea struct {
	Post
	SavedAt time.Time `json:"saved_at"`
}

// UserProfile is the public view of a user.
type UserProfile struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Assets       []Asset `json:"assets"`
	Posts        []Post  `json:"posts"`
	IsSubscribed bool    `json:"isSubscribed"`
}

// ToggleResult reports which way a toggle went.
type ToggleResult struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}
