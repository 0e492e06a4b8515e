package request

// CreateAnxietyLogRequest represents the request body for a mood entry
type CreateAnxietyLogRequest struct {
	Level int    `json:"level"`
	Event string `json:"event"`
}
