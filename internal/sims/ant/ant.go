package ant

import (
	"strconv"

	"termlife/internal/core"
)

// Heading is the direction the ant faces. Declaration order is the clockwise
// turning cycle.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// Marker is the glyph drawn on the ant's cell.
const Marker = 'X'

// TurnRight rotates the heading clockwise.
func (h Heading) TurnRight() Heading { return (h + 1) % 4 }

// TurnLeft rotates the heading counter-clockwise.
func (h Heading) TurnLeft() Heading { return (h + 3) % 4 }

// Delta returns the unit step for the heading; y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// String names the heading.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "heading(" + strconv.Itoa(int(h)) + ")"
	}
}

// Ant is Langton's ant walking a toroidal grid. Live cells are black.
type Ant struct {
	grid       *core.Grid
	x, y       int
	heading    Heading
	generation int
}

// New places an ant at the center of g facing up.
func New(g *core.Grid) *Ant {
	w, h := g.Dimensions()
	return &Ant{grid: g, x: w / 2, y: h / 2, heading: Up}
}

// Name returns the simulation identifier.
func (a *Ant) Name() string { return "ant" }

// Title returns the heading shown above the board.
func (a *Ant) Title() string { return "Langton's Ant" }

// Size returns the grid dimensions.
func (a *Ant) Size() core.Size { return a.grid.Size() }

// Grid exposes the cell colors.
func (a *Ant) Grid() *core.Grid { return a.grid }

// Position returns the ant's (x, y) cell.
func (a *Ant) Position() (int, int) { return a.x, a.y }

// Heading returns the direction the ant faces.
func (a *Ant) Heading() Heading { return a.heading }

// Generation reports how many steps led to this state.
func (a *Ant) Generation() int { return a.generation }

// Cells returns a row-major copy of the cell colors.
func (a *Ant) Cells() []bool { return a.grid.Cells() }

// Marker reports the ant's cell for overlays.
func (a *Ant) Marker() (int, int, bool) { return a.x, a.y, true }

// Render draws the board with the ant's cell marked.
func (a *Ant) Render() string { return a.grid.RenderMarked(a.x, a.y, Marker) }

// Step advances the ant by one move.
func (a *Ant) Step() core.Automaton { return a.Next() }

// Next turns right on a white cell or left on a black one, flips the cell it
// stood on and moves one cell forward, wrapping at the edges.
func (a *Ant) Next() *Ant {
	heading := a.heading.TurnRight()
	if a.grid.At(a.x, a.y) {
		heading = a.heading.TurnLeft()
	}
	dx, dy := heading.Delta()
	x, y := a.grid.Wrap(a.x+dx, a.y+dy)
	return &Ant{
		grid:       a.grid.Toggle(a.x, a.y),
		x:          x,
		y:          y,
		heading:    heading,
		generation: a.generation + 1,
	}
}

// FastForward applies n moves without rendering.
func (a *Ant) FastForward(n int) *Ant {
	for i := 0; i < n; i++ {
		a = a.Next()
	}
	return a
}

// Parameters describes the automaton for the HUD.
func (a *Ant) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParameters(a.grid, a.generation),
		{
			Name: "Ant",
			Params: []core.Parameter{
				core.IntParam("x", "X", a.x),
				core.IntParam("y", "Y", a.y),
				core.StringParam("heading", "Heading", a.heading.String()),
			},
		},
	}}
}

func init() {
	core.Register("ant", func(cfg map[string]string) (core.Automaton, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		g, err := c.Grid.Build()
		if err != nil {
			return nil, err
		}
		return New(g).FastForward(c.Steps), nil
	})
}
