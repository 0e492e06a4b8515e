package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidID) {
				t.Errorf("Expected ErrInvalidID, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestValidateCreateTrade(t *testing.T) {
	t.Run("accepts buy and sell", func(t *testing.T) {
		for _, typ := range []string{"buy", "sell"} {
			if err := ValidateCreateTrade(request.CreateTradeRequest{AssetID: 1, Type: typ}); err != nil {
				t.Errorf("Expected %s to be valid, got %v", typ, err)
			}
		}
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		err := ValidateCreateTrade(request.CreateTradeRequest{Type: "short"})
		var verr *Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected *Error, got %v", err)
		}
		if _, ok := verr.Fields["asset_id"]; !ok {
			t.Error("Expected asset_id error")
		}
		if _, ok := verr.Fields["type"]; !ok {
			t.Error("Expected type error")
		}
	})
}

func TestValidateCreateAsset(t *testing.T) {
	if err := ValidateCreateAsset(request.CreateAssetRequest{Type: "crypto"}); err != nil {
		t.Errorf("Expected crypto to be valid, got %v", err)
	}
	if err := ValidateCreateAsset(request.CreateAssetRequest{Type: "gold"}); err == nil {
		t.Error("Expected gold to be rejected")
	}
	if err := ValidateCreateAsset(request.CreateAssetRequest{}); err == nil {
		t.Error("Expected missing type to be rejected")
	}
}

func TestValidateFeedRequests(t *testing.T) {
	t.Run("post content is required", func(t *testing.T) {
		if err := ValidateCreatePost(request.CreatePostRequest{Content: "   "}); err == nil {
			t.Error("Expected blank content to be rejected")
		}
		if err := ValidateCreatePost(request.CreatePostRequest{Content: "hello"}); err != nil {
			t.Errorf("Expected valid post, got %v", err)
		}
	})

	t.Run("comment content is required", func(t *testing.T) {
		if err := ValidateCreateComment(request.CreateCommentRequest{}); err == nil {
			t.Error("Expected empty comment to be rejected")
		}
	})

	t.Run("reaction type must be known", func(t *testing.T) {
		for _, typ := range []string{"like", "handshake", "horror"} {
			if err := ValidateReaction(request.ToggleReactionRequest{Type: typ}); err != nil {
				t.Errorf("Expected %s to be valid, got %v", typ, err)
			}
		}
		if err := ValidateReaction(request.ToggleReactionRequest{Type: "love"}); err == nil {
			t.Error("Expected love to be rejected")
		}
	})
}

func TestValidateCreateAnxietyLog(t *testing.T) {
	longCyrillic := strings.Repeat("паника", 60)

	tests := []struct {
		name    string
		level   int
		event   string
		wantErr bool
	}{
		{"level below range", 0, "x", true},
		{"lowest level", 1, "x", false},
		{"highest level", 10, "x", false},
		{"level above range", 11, "x", true},
		{"empty event", 5, "", false},
		{"long cyrillic event", 5, longCyrillic, false},
		{"very long event", 5, strings.Repeat("ставка ЦБ ", 500), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateAnxietyLog(request.CreateAnxietyLogRequest{Level: tt.level, Event: tt.event})
			if (err != nil) != tt.wantErr {
				t.Errorf("got error %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
