package ant

import (
	"strconv"

	"termlife/internal/core"
)

// Config holds parameters for the Langton's ant simulation.
type Config struct {
	Grid core.GridConfig
	// Steps is applied silently before the first render.
	Steps int
}

// DefaultConfig returns an all-white 50x50 board.
func DefaultConfig() Config {
	return Config{Grid: core.GridConfig{Width: 50, Height: 50}}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	grid, err := core.GridConfigFromMap(cfg, c.Grid)
	if err != nil {
		return c, err
	}
	c.Grid = grid
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	return c, nil
}
