package life

import "termlife/internal/core"

// Config holds parameters for the Game of Life simulation.
type Config struct {
	Grid    core.GridConfig
	Variant Variant
}

// DefaultConfig returns a 50x50 randomly seeded board using the normal rule.
func DefaultConfig() Config {
	return Config{
		Grid:    core.GridConfig{Width: 50, Height: 50, Random: true},
		Variant: VariantNormal,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	grid, err := core.GridConfigFromMap(cfg, c.Grid)
	if err != nil {
		return c, err
	}
	c.Grid = grid
	if v, ok := cfg["variant"]; ok {
		variant, err := ParseVariant(v)
		if err != nil {
			return c, err
		}
		c.Variant = variant
	}
	return c, nil
}
