package core

import (
	"fmt"
	"strconv"

	prng "termlife/pkg/core"
)

// GridConfig holds the initial-state settings shared by grid-based sims.
type GridConfig struct {
	Width  int
	Height int
	// File, when set, overrides Width/Height with the loaded grid.
	File string
	Seed int64
	// Random fills the grid with coin flips instead of leaving it dead.
	Random bool
}

// GridConfigFromMap overlays the "w", "h", "file" and "seed" keys of cfg on def.
// Unparseable numbers keep the default; explicit non-positive sizes fail unless
// a file supplies the dimensions.
func GridConfigFromMap(cfg map[string]string, def GridConfig) (GridConfig, error) {
	c := def
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["file"]; ok {
		c.File = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if c.File != "" {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			if parsed <= 0 {
				return c, fmt.Errorf("%w: width %d", ErrInvalidDimension, parsed)
			}
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			if parsed <= 0 {
				return c, fmt.Errorf("%w: height %d", ErrInvalidDimension, parsed)
			}
			c.Height = parsed
		}
	}
	return c, nil
}

// Build creates the initial grid described by the config.
func (c GridConfig) Build() (*Grid, error) {
	if c.File != "" {
		return LoadGrid(c.File)
	}
	if c.Random {
		return RandomGrid(c.Width, c.Height, prng.NewRNG(c.Seed))
	}
	return NewGrid(c.Width, c.Height)
}
