package validation

import (
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
)

// Anxiety level bounds accepted from clients.
const (
	MinAnxietyLevel = 1
	MaxAnxietyLevel = 10
)

// ValidateCreateAnxietyLog checks the level range. The event text is free-form.
func ValidateCreateAnxietyLog(req request.CreateAnxietyLogRequest) error {
	errors := make(map[string]string)

	if req.Level < MinAnxietyLevel || req.Level > MaxAnxietyLevel {
		errors["level"] = "level must be between 1 and 10"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
