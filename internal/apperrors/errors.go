package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound indicates that a post with the given ID does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrAssetNotFound indicates that the asset does not exist or belongs to another user.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrDigestNotFound indicates that no market digest has been stored yet.
	ErrDigestNotFound = errors.New("digest not found")
)

// Business logic errors represent constraint violations and invalid input.
var (
	// ErrConstraintViolation indicates that the store rejected a write because of a
	// UNIQUE, CHECK or FOREIGN KEY constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidID indicates that a path or header identifier is not a positive integer.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrInvalidMonth indicates a calendar month that is not formatted as YYYY-MM.
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInvalidTimezone indicates an unknown IANA time zone name.
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// External service errors.
var (
	// ErrGenerationFailed covers every failure of the text generator: timeouts,
	// network errors, quota errors and empty responses.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrGeneratorUnavailable indicates that no generator is configured.
	ErrGeneratorUnavailable = errors.New("text generator not configured")

	// ErrAdviceFailed is the message shown to clients when advice generation fails.
	ErrAdviceFailed = errors.New("AI analysis failed")
)

// Operation failure errors represent system-level failures when retrieving or storing data.
var (
	ErrFailedToRetrieveAssets       = errors.New("failed to retrieve portfolio")
	ErrFailedToGetPortfolioSummary  = errors.New("failed to get portfolio summary")
	ErrFailedToCreateAsset          = errors.New("failed to create asset")
	ErrFailedToRetrieveTrades       = errors.New("failed to retrieve trades")
	ErrFailedToCreateTrade          = errors.New("failed to create trade")
	ErrFailedToGetCommissionStats   = errors.New("failed to get commission statistics")
	ErrFailedToRetrieveAnxietyLogs  = errors.New("failed to retrieve anxiety logs")
	ErrFailedToCreateAnxietyLog     = errors.New("failed to create anxiety log")
	ErrFailedToBuildCalendar        = errors.New("failed to build calendar")
	ErrFailedToRetrieveFeed         = errors.New("failed to retrieve feed")
	ErrFailedToCreatePost           = errors.New("failed to create post")
	ErrFailedToCreateComment        = errors.New("failed to create comment")
	ErrFailedToToggleReaction       = errors.New("failed to toggle reaction")
	ErrFailedToToggleSubscription   = errors.New("failed to toggle subscription")
	ErrFailedToToggleSavedIdea      = errors.New("failed to toggle saved idea")
	ErrFailedToRetrieveSavedIdeas   = errors.New("failed to retrieve saved ideas")
	ErrFailedToRetrieveProfile      = errors.New("failed to retrieve profile")
	ErrFailedToRetrieveSentiment    = errors.New("failed to retrieve market sentiment")
	ErrFailedToRetrieveGoals        = errors.New("failed to retrieve goals")
	ErrFailedToRetrieveAchievements = errors.New("failed to retrieve achievements")
	ErrFailedToSyncGoals            = errors.New("failed to sync goals")
	ErrFailedToRetrieveDigest       = errors.New("failed to retrieve digest")
	ErrFailedToGetVersionInfo       = errors.New("failed to get version information")
)
