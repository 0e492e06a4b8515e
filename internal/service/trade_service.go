package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
	"github.com/ndewijer/VibeInvestor-Backend/internal/secret"
)

// TradeService handles the trade journal: listing, creation with the
// loss-analysis gate, and commission statistics.
type TradeService struct {
	db        *sql.DB
	tradeRepo *repository.TradeRepository
	assetRepo *repository.AssetRepository
	box       *secret.Box
	metrics   *metrics.Metrics
}

// NewTradeService creates a new TradeService with the provided repository dependencies.
// box encrypts the analysis text at rest and may be a pass-through Box.
func NewTradeService(
	db *sql.DB,
	tradeRepo *repository.TradeRepository,
	assetRepo *repository.AssetRepository,
	box *secret.Box,
	m *metrics.Metrics,
) *TradeService {
	return &TradeService{
		db:        db,
		tradeRepo: tradeRepo,
		assetRepo: assetRepo,
		box:       box,
		metrics:   m,
	}
}

// IsLossSell reports whether a trade sells below the average purchase price.
func IsLossSell(tradeType string, price, avgPrice float64) bool {
	return tradeType == model.TradeTypeSell && avgPrice > price
}

// GetTrades retrieves the trade journal of a user, newest first, with analysis text decrypted.
func (s *TradeService) GetTrades(ctx context.Context, userID int64) ([]model.TradeResponse, error) {
	trades, err := s.tradeRepo.GetTradeJournal(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range trades {
		for _, field := range []*string{trades[i].Reason, trades[i].WhatDifferently, trades[i].Lesson} {
			if field == nil {
				continue
			}
			plain, err := s.box.Open(*field)
			if err != nil {
				return nil, fmt.Errorf("trade %d: %w", trades[i].ID, err)
			}
			*field = plain
		}
	}
	return trades, nil
}

// CreateTrade journals a trade for userID. The analysis is stored, in the
// same transaction, only when the trade sells below the asset's avg_price and
// reflection text was supplied; otherwise supplied analysis is discarded.
// Returns ErrAssetNotFound when the asset is unknown or belongs to another user.
func (s *TradeService) CreateTrade(ctx context.Context, userID int64, req request.CreateTradeRequest) (model.TradeRecord, error) {
	var record model.TradeRecord

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		asset, err := s.assetRepo.WithTx(tx).GetAsset(ctx, req.AssetID)
		if err != nil {
			return err
		}
		if asset.UserID != userID {
			return apperrors.ErrAssetNotFound
		}

		trade := model.Trade{
			UserID:     userID,
			AssetID:    asset.ID,
			Type:       req.Type,
			Quantity:   req.Quantity,
			Price:      req.Price,
			Commission: req.Commission,
			Mood:       req.Mood,
			Note:       req.Note,
			CreatedAt:  time.Now().UTC().Truncate(time.Second),
		}
		tradeRepo := s.tradeRepo.WithTx(tx)
		if err := tradeRepo.InsertTrade(ctx, &trade); err != nil {
			return err
		}
		record.Trade = trade

		if !IsLossSell(req.Type, req.Price, asset.AvgPrice) || req.Analysis.Empty() {
			return nil
		}

		sealed := model.TradeAnalysis{TradeID: trade.ID}
		for _, f := range []struct {
			dst   *string
			plain string
		}{
			{&sealed.Reason, req.Analysis.Reason},
			{&sealed.WhatDifferently, req.Analysis.WhatDifferently},
			{&sealed.Lesson, req.Analysis.Lesson},
		} {
			if *f.dst, err = s.box.Seal(f.plain); err != nil {
				return err
			}
		}
		if err := tradeRepo.InsertTradeAnalysis(ctx, &sealed); err != nil {
			return err
		}

		record.Analysis = &model.TradeAnalysis{
			ID:              sealed.ID,
			TradeID:         trade.ID,
			Reason:          req.Analysis.Reason,
			WhatDifferently: req.Analysis.WhatDifferently,
			Lesson:          req.Analysis.Lesson,
		}
		return nil
	})
	if err != nil {
		return model.TradeRecord{}, err
	}

	s.metrics.RecordTrade(record.Trade.Type, record.Analysis != nil)
	return record, nil
}

// GetCommissionStats computes commission statistics for userID as of now.
func (s *TradeService) GetCommissionStats(ctx context.Context, userID int64) (model.CommissionStats, error) {
	now := time.Now()
	from := yearWindowStart(now)

	trades, err := s.tradeRepo.GetTradesBetween(ctx, userID, from, now.Add(time.Second))
	if err != nil {
		return model.CommissionStats{}, err
	}
	assets, err := s.assetRepo.GetAssets(ctx, userID)
	if err != nil {
		return model.CommissionStats{}, err
	}

	return ComputeCommissionStats(trades, TotalValue(assets), now), nil
}
