package config

import (
	"fmt"

	"github.com/kilianp07/approx/core/resultlog"
)

// LoggingConfig defines settings for result log storage and rotation.
type LoggingConfig struct {
	// Backend selects the log store type: "jsonl", "jsonl_rotating", "sqlite" or "none".
	Backend string `json:"backend"`
	// Path is the file location of the log store.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = resultlog.BackendJSONL
	}
	if c.Path == "" && c.Backend != resultlog.BackendNone {
		if c.Backend == resultlog.BackendSQLite {
			c.Path = "approx-results.db"
		} else {
			c.Path = "approx-results.jsonl"
		}
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Backend {
	case resultlog.BackendJSONL, resultlog.BackendRotatingJSONL, resultlog.BackendSQLite:
	case resultlog.BackendNone:
		return nil
	default:
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("rotation limits must not be negative")
	}
	return nil
}

// Rotation returns the rotation limits in the form resultlog.Open expects.
func (c LoggingConfig) Rotation() resultlog.Rotation {
	return resultlog.Rotation{MaxSizeMB: c.MaxSizeMB, MaxBackups: c.MaxBackups, MaxAgeDays: c.MaxAgeDays}
}
