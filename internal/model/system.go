package model

// Health is the liveness report served by /api/system/health.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	AI       string `json:"ai"`
	Error    string `json:"error,omitempty"`
}

// Healthy reports whether the database answered the probe.
func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

// VersionInfo describes the running build and the state of its schema.
type VersionInfo struct {
	AppVersion      string          `json:"app_version"`
	DbVersion       string          `json:"db_version"`
	Features        map[string]bool `json:"features"`
	MigrationNeeded bool            `json:"migration_needed"`
	// MigrationMessage is set only while MigrationNeeded is true.
	MigrationMessage *string `json:"migration_message,omitempty"`
}
