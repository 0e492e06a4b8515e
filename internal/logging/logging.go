// Package logging builds the zap logger shared by the server, the CLI and the
// background jobs.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ndewijer/VibeInvestor-Backend/internal/config"
)

// New returns a logger configured from cfg. Format "console" gives a
// human-readable development encoder, anything else JSON.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "ts"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Cron adapts a zap logger to cron.Logger.
type Cron struct {
	logger *zap.Logger
}

// NewCron wraps logger for the job scheduler.
func NewCron(logger *zap.Logger) *Cron {
	return &Cron{logger: logger.Named("cron")}
}

func (c *Cron) Info(msg string, keysAndValues ...any) {
	c.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (c *Cron) Error(err error, msg string, keysAndValues ...any) {
	c.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
