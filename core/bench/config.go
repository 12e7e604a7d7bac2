package bench

import "fmt"

// MakespanCase is one entry of the makespan case table.
type MakespanCase struct {
	Name       string    `json:"name"`
	Jobs       []float64 `json:"jobs"`
	Processors int       `json:"processors"`
	// Expected is the makespan the heuristic must not exceed. 0 disables the check.
	Expected float64 `json:"expected"`
}

// AttendanceConfig drives the random attendance instances of a suite.
type AttendanceConfig struct {
	Runs         int   `json:"runs"`
	Seed         int64 `json:"seed"`
	Groups       int   `json:"groups"`
	MaxGroupSize int   `json:"max_group_size"`
	MinCapacity  int   `json:"min_capacity"`
	MaxCapacity  int   `json:"max_capacity"`
}

// SuiteConfig describes everything a suite run executes.
type SuiteConfig struct {
	MakespanCases []MakespanCase `json:"makespan_cases"`
	// Optimal also solves each makespan case exactly when it is small enough.
	Optimal    bool             `json:"optimal"`
	Attendance AttendanceConfig `json:"attendance"`
}

// DefaultMakespanCases returns the reference LPT table: perfectly fitting
// jobs, a slight imbalance, uniform jobs, one dominant job and mixed sizes.
func DefaultMakespanCases() []MakespanCase {
	return []MakespanCase{
		{Name: "perfect-fit", Jobs: []float64{10, 10, 10, 10}, Processors: 2, Expected: 20},
		{Name: "slight-imbalance", Jobs: []float64{5, 8, 7, 10, 12}, Processors: 3, Expected: 15},
		{Name: "uniform", Jobs: []float64{5, 5, 5, 5, 5, 5}, Processors: 3, Expected: 10},
		{Name: "dominant-job", Jobs: []float64{1, 1, 1, 1, 50}, Processors: 3, Expected: 50},
		{Name: "mixed", Jobs: []float64{3, 7, 8, 4, 2, 12, 15}, Processors: 4, Expected: 20},
	}
}

// SetDefaults applies the reference table and the random demo parameters
// (ten groups of 1..50 people, capacity 50..150).
func (c *SuiteConfig) SetDefaults() {
	if len(c.MakespanCases) == 0 {
		c.MakespanCases = DefaultMakespanCases()
	}
	a := &c.Attendance
	if a.Runs == 0 {
		a.Runs = 5
	}
	if a.Seed == 0 {
		a.Seed = 1000
	}
	if a.Groups == 0 {
		a.Groups = 10
	}
	if a.MaxGroupSize == 0 {
		a.MaxGroupSize = 50
	}
	if a.MinCapacity == 0 && a.MaxCapacity == 0 {
		a.MinCapacity = 50
		a.MaxCapacity = 150
	}
}

// Validate checks the suite parameters.
func (c SuiteConfig) Validate() error {
	for i, mc := range c.MakespanCases {
		if mc.Processors < 1 {
			return fmt.Errorf("makespan case %d (%s): processors must be >= 1", i, mc.Name)
		}
		for _, j := range mc.Jobs {
			if j < 0 {
				return fmt.Errorf("makespan case %d (%s): negative job %v", i, mc.Name, j)
			}
		}
	}
	a := c.Attendance
	if a.Runs < 0 {
		return fmt.Errorf("attendance runs must be >= 0")
	}
	if a.Groups < 0 || a.MaxGroupSize < 1 {
		return fmt.Errorf("attendance groups must be >= 0 and max_group_size >= 1")
	}
	if a.MinCapacity < 0 || a.MaxCapacity < a.MinCapacity {
		return fmt.Errorf("attendance capacity range [%d, %d] is invalid", a.MinCapacity, a.MaxCapacity)
	}
	return nil
}
