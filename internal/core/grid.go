package core

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	prng "termlife/pkg/core"
)

const (
	glyphAlive   = '#'
	glyphDead    = ' '
	glyphBorder  = '|'
	glyphDivider = '-'
	deadChar     = '0'
)

// Grid stores a fixed-size 2D field of boolean cells in row-major order.
// A Grid is never modified after construction; every update returns a new
// value with the same dimensions.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// RandomGrid allocates a grid where every cell is an independent coin flip.
func RandomGrid(w, h int, rng *prng.RNG) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	prng.FillBinary(rng, g.cells)
	return g, nil
}

// GridFromRows builds a grid from rows indexed [y][x]. Every row must have the
// same non-zero length.
func GridFromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidDimension, len(rows))
	}
	w := len(rows[0])
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), w)
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// ParseGrid reads newline-separated rows where '0' is a dead cell and any
// other character is alive. Trailing blank lines are ignored and rows of
// unequal width are rejected.
func ParseGrid(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidFile)
	}

	w := utf8.RuneCountInString(lines[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrInvalidFile)
	}
	g := &Grid{w: w, h: len(lines), cells: make([]bool, w*len(lines))}
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y+1, n, w)
		}
		x := 0
		for _, r := range line {
			g.cells[y*w+x] = r != deadChar
			x++
		}
	}
	return g, nil
}

// LoadGrid reads and parses the initial-state file at path.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	g, err := ParseGrid(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (int, int) { return g.w, g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// At reports whether the cell at (x, y) is alive. Coordinates outside the
// grid are dead.
func (g *Grid) At(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// Cells returns a row-major copy of the cell values.
func (g *Grid) Cells() []bool {
	return append([]bool(nil), g.cells...)
}

// Rows returns a copy of the cells indexed [y][x].
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for y := range rows {
		rows[y] = append([]bool(nil), g.cells[y*g.w:(y+1)*g.w]...)
	}
	return rows
}

// Map builds the next grid by evaluating fn for every cell. fn only ever sees
// this grid, so all cells are updated simultaneously.
func (g *Grid) Map(fn func(x, y int, alive bool) bool) *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]bool, len(g.cells))}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.Index(x, y)
			next.cells[idx] = fn(x, y, g.cells[idx])
		}
	}
	return next
}

// Set returns a copy of the grid with the cell at (x, y) set to alive.
// Out-of-bounds coordinates return an unchanged copy.
func (g *Grid) Set(x, y int, alive bool) *Grid {
	next := &Grid{w: g.w, h: g.h, cells: g.Cells()}
	if g.InBounds(x, y) {
		next.cells[g.Index(x, y)] = alive
	}
	return next
}

// Toggle returns a copy of the grid with the cell at (x, y) flipped.
func (g *Grid) Toggle(x, y int) *Grid {
	return g.Set(x, y, !g.At(x, y))
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Render draws the grid as a bordered text block: a divider of width+2 '-',
// one '|'-framed line per row with '#' for alive and ' ' for dead, and a
// closing divider. Lines are joined with '\n' and there is no trailing newline.
func (g *Grid) Render() string {
	return g.render(-1, -1, 0)
}

// RenderMarked renders like Render but draws marker at (mx, my) regardless of
// the cell value there.
func (g *Grid) RenderMarked(mx, my int, marker rune) string {
	return g.render(mx, my, marker)
}

func (g *Grid) render(mx, my int, marker rune) string {
	var b strings.Builder
	divider := strings.Repeat(string(glyphDivider), g.w+2)
	b.Grow((g.w + 3) * (g.h + 2))
	b.WriteString(divider)
	b.WriteByte('\n')
	for y := 0; y < g.h; y++ {
		b.WriteByte(glyphBorder)
		for x := 0; x < g.w; x++ {
			switch {
			case x == mx && y == my:
				b.WriteRune(marker)
			case g.cells[g.Index(x, y)]:
				b.WriteByte(glyphAlive)
			default:
				b.WriteByte(glyphDead)
			}
		}
		b.WriteByte(glyphBorder)
		b.WriteByte('\n')
	}
	b.WriteString(divider)
	return b.String()
}
