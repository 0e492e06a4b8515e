package request

type CreatePostRequest struct {
	Content      string `json:"content"`
	IsTradeShare bool   `json:"is_trade_share"`
	TradeID      *int64 `json:"trade_id,omitempty"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type ToggleReactionRequest struct {
	Type string `json:"type"`
}
