package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // calendar zones must resolve on minimal images

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
	AI       AIConfig
	Journal  JournalConfig
	Jobs     JobsConfig
	Demo     DemoConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// AIConfig configures the external text generator.
type AIConfig struct {
	APIKey        string
	Model         string
	Timeout       time.Duration
	Language      string
	RatePerMinute int
}

// Enabled reports whether an API key is configured.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// JournalConfig holds settings for the private trade journal.
type JournalConfig struct {
	// EncryptionKey is a base64 fernet key. Empty stores reflections in plain text.
	EncryptionKey string
	// CalendarTimezone is the default IANA zone used to bucket the emotional calendar.
	CalendarTimezone string
}

// JobsConfig holds background job schedules.
type JobsConfig struct {
	// GoalSyncSchedule is a cron spec; empty disables the job.
	GoalSyncSchedule string
}

// DemoConfig describes the single-tenant demo setup.
type DemoConfig struct {
	UserID int64
	Seed   bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	aiTimeout, err := time.ParseDuration(getEnv("AI_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT: %w", err)
	}

	ratePerMinute, err := strconv.Atoi(getEnv("AI_RATE_PER_MINUTE", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_RATE_PER_MINUTE: %w", err)
	}

	demoUserID, err := strconv.ParseInt(getEnv("DEMO_USER_ID", "1"), 10, 64)
	if err != nil || demoUserID <= 0 {
		return nil, fmt.Errorf("invalid DEMO_USER_ID: %q", os.Getenv("DEMO_USER_ID"))
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/vibe_investor.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		AI: AIConfig{
			APIKey:        os.Getenv("GEMINI_API_KEY"),
			Model:         getEnv("AI_MODEL", "gemini-3-flash-preview"),
			Timeout:       aiTimeout,
			Language:      getEnv("AI_LANGUAGE", "Russian"),
			RatePerMinute: ratePerMinute,
		},
		Journal: JournalConfig{
			EncryptionKey:    os.Getenv("JOURNAL_ENCRYPTION_KEY"),
			CalendarTimezone: getEnv("CALENDAR_TIMEZONE", "Europe/Moscow"),
		},
		Jobs: JobsConfig{
			GoalSyncSchedule: getEnvAllowEmpty("GOAL_SYNC_SCHEDULE", "@every 1h"),
		},
		Demo: DemoConfig{
			UserID: demoUserID,
			Seed:   seed,
		},
	}

	if _, err := time.LoadLocation(config.Journal.CalendarTimezone); err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE: %w", err)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAllowEmpty is getEnv for settings where an explicitly empty value means "off".
func getEnvAllowEmpty(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
