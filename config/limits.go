package config

import (
	"fmt"

	"github.com/kilianp07/approx/core/attendance"
	"github.com/kilianp07/approx/core/makespan"
)

// LimitsConfig bounds the exponential exact solvers.
type LimitsConfig struct {
	MaxExactGroups int `json:"max_exact_groups"`
	MaxOptimalJobs int `json:"max_optimal_jobs"`
}

// SetDefaults applies the package defaults of the exact solvers.
func (c *LimitsConfig) SetDefaults() {
	if c.MaxExactGroups == 0 {
		c.MaxExactGroups = attendance.DefaultMaxExactGroups
	}
	if c.MaxOptimalJobs == 0 {
		c.MaxOptimalJobs = makespan.MaxOptimalJobs
	}
}

// Validate checks the limits are usable.
func (c LimitsConfig) Validate() error {
	if c.MaxExactGroups < 1 || c.MaxExactGroups > attendance.MaxMaskGroups {
		return fmt.Errorf("max_exact_groups must be in [1, %d], got %d", attendance.MaxMaskGroups, c.MaxExactGroups)
	}
	if c.MaxOptimalJobs < 1 {
		return fmt.Errorf("max_optimal_jobs must be >= 1, got %d", c.MaxOptimalJobs)
	}
	return nil
}
