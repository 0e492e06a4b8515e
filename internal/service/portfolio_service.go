package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/repository"
)

// PortfolioService handles portfolio-related business logic operations.
type PortfolioService struct {
	assetRepo *repository.AssetRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(assetRepo *repository.AssetRepository) *PortfolioService {
	return &PortfolioService{
		assetRepo: assetRepo,
	}
}

// GetAssets retrieves every holding of a user.
func (s *PortfolioService) GetAssets(ctx context.Context, userID int64) ([]model.Asset, error) {
	return s.assetRepo.GetAssets(ctx, userID)
}

// CreateAsset adds a holding for userID.
func (s *PortfolioService) CreateAsset(ctx context.Context, userID int64, req request.CreateAssetRequest) (model.Asset, error) {
	asset := model.Asset{
		UserID:    userID,
		Type:      req.Type,
		Symbol:    req.Symbol,
		Name:      req.Name,
		Quantity:  req.Quantity,
		AvgPrice:  req.AvgPrice,
		Sector:    req.Sector,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.assetRepo.InsertAsset(ctx, &asset); err != nil {
		return model.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// GetPortfolioSummary values the holdings of a user and breaks them down by sector.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, userID int64) (model.PortfolioSummary, error) {
	assets, err := s.assetRepo.GetAssets(ctx, userID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}
	return Summarize(assets), nil
}

// TotalValue is Σ quantity × avg_price over assets.
func TotalValue(assets []model.Asset) float64 {
	total := 0.0
	for _, a := range assets {
		total += a.Value()
	}
	return total
}

// SectorCount returns the number of distinct non-empty sectors.
func SectorCount(assets []model.Asset) int {
	seen := make(map[string]struct{})
	for _, a := range assets {
		if a.Sector != "" {
			seen[a.Sector] = struct{}{}
		}
	}
	return len(seen)
}

// Summarize computes the total value and the sector breakdown. Sectors are
// ordered by value descending, then by name. Percentages are 0 when the total is 0.
func Summarize(assets []model.Asset) model.PortfolioSummary {
	total := TotalValue(assets)

	bySector := make(map[string]float64)
	for _, a := range assets {
		bySector[a.Sector] += a.Value()
	}

	sectors := make([]model.SectorAllocation, 0, len(bySector))
	for sector, value := range bySector {
		pct := 0.0
		if total != 0 {
			pct = value / total * 100
		}
		sectors = append(sectors, model.SectorAllocation{
			Sector:     sector,
			Value:      round(value),
			Percentage: round(pct),
		})
	}
	slices.SortFunc(sectors, func(a, b model.SectorAllocation) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Sector, b.Sector)
	})

	return model.PortfolioSummary{
		TotalValue: round(total),
		AssetCount: len(assets),
		Sectors:    sectors,
	}
}
