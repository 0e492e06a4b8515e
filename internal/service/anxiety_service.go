package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// RecentAnxietyLimit is how many logs the journal view returns.
const RecentAnxietyLimit = 30

// AnxietyService handles the mood journal and the emotional calendar.
type AnxietyService struct {
	anxietyRepo *repository.AnxietyRepository
	tradeRepo   *repository.TradeRepository
	defaultLoc  *time.Location
}

// NewAnxietyService creates a new AnxietyService. defaultLoc buckets the
// calendar when the caller does not name a zone.
func NewAnxietyService(
	anxietyRepo *repository.AnxietyRepository,
	tradeRepo *repository.TradeRepository,
	defaultLoc *time.Location,
) *AnxietyService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &AnxietyService{
		anxietyRepo: anxietyRepo,
		tradeRepo:   tradeRepo,
		defaultLoc:  defaultLoc,
	}
}

// GetLogs retrieves the newest RecentAnxietyLimit logs of a user.
func (s *AnxietyService) GetLogs(ctx context.Context, userID int64) ([]model.AnxietyLog, error) {
	return s.anxietyRepo.GetRecentLogs(ctx, userID, RecentAnxietyLimit)
}

// CreateLog appends a mood entry for userID.
func (s *AnxietyService) CreateLog(ctx context.Context, userID int64, req request.CreateAnxietyLogRequest) (model.AnxietyLog, error) {
	log := model.AnxietyLog{
		UserID:    userID,
		Level:     req.Level,
		Event:     req.Event,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.anxietyRepo.InsertLog(ctx, &log); err != nil {
		return model.AnxietyLog{}, err
	}
	return log, nil
}

// GetCalendar builds the emotional calendar for month (YYYY-MM, empty for the
// current month) in the IANA zone tz (empty for the configured default).
func (s *AnxietyService) GetCalendar(ctx context.Context, userID int64, month, tz string) (model.Calendar, error) {
	loc := s.defaultLoc
	if tz != "" {
		var err error
		if loc, err = time.LoadLocation(tz); err != nil {
			return model.Calendar{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidTimezone, tz)
		}
	}

	var first time.Time
	if month == "" {
		now := time.Now().In(loc)
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation("2006-01", month, loc)
		if err != nil {
			return model.Calendar{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidMonth, month)
		}
		first = parsed
	}
	next := first.AddDate(0, 1, 0)

	logs, err := s.anxietyRepo.GetLogsBetween(ctx, userID, first, next)
	if err != nil {
		return model.Calendar{}, err
	}
	trades, err := s.tradeRepo.GetTradesBetween(ctx, userID, first, next)
	if err != nil {
		return model.Calendar{}, err
	}

	return BuildCalendar(first, loc, logs, trades), nil
}
