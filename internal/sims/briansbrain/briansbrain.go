// Package briansbrain implements Brian's Brain, a three-state relative of
// Life where every firing cell spends one generation refractory.
package briansbrain

import (
	"termlife/internal/core"
	"termlife/internal/sims/life"
	prng "termlife/pkg/core"
)

// Brain holds the firing cells and the cells that fired last generation.
type Brain struct {
	firing     *core.Grid
	dying      *core.Grid
	generation int
}

// New starts a Brain with the given firing cells and no refractory cells.
func New(firing *core.Grid) *Brain {
	dying, _ := core.NewGrid(firing.Dimensions())
	return &Brain{firing: firing, dying: dying}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Title is shown above the board.
func (b *Brain) Title() string { return "Brian's Brain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.firing.Size() }

// Firing returns the grid of firing cells.
func (b *Brain) Firing() *core.Grid { return b.firing }

// Dying returns the grid of refractory cells.
func (b *Brain) Dying() *core.Grid { return b.dying }

// Generation reports the number of steps taken.
func (b *Brain) Generation() int { return b.generation }

// Cells exposes the firing cells.
func (b *Brain) Cells() []bool { return b.firing.Cells() }

// Render draws the firing cells; refractory cells render as dead.
func (b *Brain) Render() string { return b.firing.Render() }

// Step implements core.Automaton.
func (b *Brain) Step() core.Automaton { return b.Next() }

// Next fires every ready cell with exactly two firing Moore neighbours. Firing
// cells become refractory and refractory cells become ready.
func (b *Brain) Next() *Brain {
	firing := b.firing.Map(func(x, y int, on bool) bool {
		if on || b.dying.At(x, y) {
			return false
		}
		return life.CountNeighbors(b.firing, x, y, life.TopologyMoore) == 2
	})
	return &Brain{firing: firing, dying: b.firing, generation: b.generation + 1}
}

// Parameters describes the automaton for the HUD.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParameters(b.firing, b.generation),
		{
			Name:   "Brain",
			Params: []core.Parameter{core.IntParam("dying", "Refractory", b.dying.Population())},
		},
	}}
}

// seed fires roughly one cell in eight.
func seed(w, h int, rng *prng.RNG) (*core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return g.Map(func(int, int, bool) bool { return rng.IntN(8) == 0 }), nil
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Automaton, error) {
		c, err := core.GridConfigFromMap(cfg, core.GridConfig{Width: 50, Height: 50})
		if err != nil {
			return nil, err
		}
		if c.File != "" {
			g, err := c.Build()
			if err != nil {
				return nil, err
			}
			return New(g), nil
		}
		g, err := seed(c.Width, c.Height, prng.NewRNG(c.Seed))
		if err != nil {
			return nil, err
		}
		return New(g), nil
	})
}
