package config

import (
	"fmt"

	"github.com/transitops/omloop/core/rotation"
	"github.com/transitops/omloop/core/turnaround"
)

// OptimizeConfig defines the rotation optimization settings.
type OptimizeConfig struct {
	// Algorithm selects the assignment algorithm: greedy, matching or mincost.
	Algorithm string `json:"algorithm"`
	// PerService restricts chaining to trips of the same service by
	// splitting partitions, producing the conservative baseline.
	PerService bool `json:"per_service"`
	// ServiceConstraint keeps revenue connections within one service
	// without splitting partitions. Ignored when PerService is set.
	ServiceConstraint bool `json:"service_constraint"`
	// TurnaroundScope selects the estimation mode: "service" or "global".
	TurnaroundScope string `json:"turnaround_scope"`
	// TurnaroundOverrides pins the turnaround minutes per vehicle type,
	// taking precedence over detection.
	TurnaroundOverrides map[string]int `json:"turnaround_overrides"`
	// Workers bounds the number of partitions solved concurrently.
	// Zero selects GOMAXPROCS.
	Workers int `json:"workers"`
}

// SetDefaults applies sane defaults.
func (c *OptimizeConfig) SetDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = rotation.MinCostName
	}
	if c.TurnaroundScope == "" {
		c.TurnaroundScope = "service"
	}
}

// Validate checks the settings.
func (c OptimizeConfig) Validate() error {
	valid := false
	for _, name := range rotation.Names() {
		if c.Algorithm == name {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	if c.TurnaroundScope != "service" && c.TurnaroundScope != "global" {
		return fmt.Errorf("unknown turnaround scope %q", c.TurnaroundScope)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	for vt, m := range c.TurnaroundOverrides {
		if m < turnaround.Floor {
			return fmt.Errorf("turnaround override for %s below floor of %d minutes", vt, turnaround.Floor)
		}
	}
	return nil
}
