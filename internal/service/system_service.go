package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ndewijer/VibeInvestor-Backend/internal/database"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB
	features map[string]bool
}

// NewSystemService creates a new SystemService. features is reported as-is by CheckVersion.
func NewSystemService(db *sql.DB, features map[string]bool) *SystemService {
	if features == nil {
		features = map[string]bool{}
	}
	return &SystemService{
		db:       db,
		features: features,
	}
}

// CheckHealth pings the database and reports which advice provider is active.
// A failed ping is reported in the returned Health, not as an error.
func (s *SystemService) CheckHealth(ctx context.Context) model.Health {
	h := model.Health{Status: "healthy", Database: "connected", AI: "fallback"}
	if s.features["ai_advice"] {
		h.AI = "gemini"
	}
	if err := database.HealthCheck(ctx, s.db); err != nil {
		h.Status = "unhealthy"
		h.Database = "disconnected"
		h.Error = err.Error()
	}
	return h
}

// CheckVersion reports the application version, the applied schema version
// and whether embedded migrations are still pending.
func (s *SystemService) CheckVersion(ctx context.Context) (model.VersionInfo, error) {
	dbVersion, err := database.SchemaVersion(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to read schema version: %w", err)
	}
	pending, err := database.PendingMigrations(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to check pending migrations: %w", err)
	}

	info := model.VersionInfo{
		AppVersion:      version.Version,
		DbVersion:       strconv.FormatInt(dbVersion, 10),
		Features:        s.features,
		MigrationNeeded: pending,
	}
	if pending {
		msg := "database schema is behind; run `vibectl migrate`"
		info.MigrationMessage = &msg
	}
	return info, nil
}
