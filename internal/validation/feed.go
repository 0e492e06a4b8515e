package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

func ValidateCreatePost(req request.CreatePostRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Content) == "" {
		errors["content"] = "content is required"
	}
	if req.TradeID != nil && *req.TradeID <= 0 {
		errors["trade_id"] = "trade_id must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateComment(req request.CreateCommentRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return &Error{Fields: map[string]string{"content": "content is required"}}
	}
	return nil
}

// ValidateReaction mirrors the reactions CHECK constraint.
func ValidateReaction(req request.ToggleReactionRequest) error {
	if !slices.Contains(model.ReactionTypes, req.Type) {
		return &Error{Fields: map[string]string{
			"type": fmt.Sprintf("invalid type: %q, expected one of %s", req.Type, strings.Join(model.ReactionTypes, ", ")),
		}}
	}
	return nil
}
