package elementary

import (
	"strconv"

	"termlife/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 32, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// the top row is the newest generation and older rows scroll downwards.
type Elementary struct {
	grid       *core.Grid
	rule       uint8
	generation int
}

// New creates an automaton whose top row holds a single live cell in the
// middle.
func New(w, h int, rule uint8) (*Elementary, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Elementary{grid: g.Set(w/2, 0, true), rule: rule}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Title returns the heading shown above the board.
func (e *Elementary) Title() string { return "Elementary Rule " + strconv.Itoa(int(e.rule)) }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return e.grid.Size() }

// Grid exposes the history grid.
func (e *Elementary) Grid() *core.Grid { return e.grid }

// Generation reports how many steps led to this state.
func (e *Elementary) Generation() int { return e.generation }

// Cells returns a row-major copy of the history grid.
func (e *Elementary) Cells() []bool { return e.grid.Cells() }

// Render draws the history as a bordered text block.
func (e *Elementary) Render() string { return e.grid.Render() }

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() core.Automaton {
	g := e.grid
	next := g.Map(func(x, y int, alive bool) bool {
		if y > 0 {
			return g.At(x, y-1)
		}
		lx, _ := g.Wrap(x-1, 0)
		rx, _ := g.Wrap(x+1, 0)
		idx := bit(g.At(lx, 0))<<2 | bit(alive)<<1 | bit(g.At(rx, 0))
		return (e.rule>>idx)&1 == 1
	})
	return &Elementary{grid: next, rule: e.rule, generation: e.generation + 1}
}

// Parameters describes the automaton for the HUD.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParameters(e.grid, e.generation),
		{Name: "Rule", Params: []core.Parameter{core.IntParam("rule", "Wolfram code", int(e.rule))}},
	}}
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Automaton, error) {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
