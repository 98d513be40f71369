package core

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	prng "termlife/pkg/core"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
	g, err := NewGrid(4, 2)
	if err != nil {
		t.Fatalf("NewGrid(4, 2): %v", err)
	}
	if w, h := g.Dimensions(); w != 4 || h != 2 {
		t.Fatalf("dimensions = %dx%d, want 4x2", w, h)
	}
	if g.Population() != 0 {
		t.Fatal("new grid should be all dead")
	}
}

func TestRenderFormat(t *testing.T) {
	g, err := GridFromRows([][]bool{
		{false, true, false},
		{true, true, false},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "-----\n| # |\n|## |\n-----"
	if got := g.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderMarkedOverridesCell(t *testing.T) {
	g, err := GridFromRows([][]bool{
		{true, false},
		{false, false},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "----\n|X |\n|  |\n----"
	if got := g.RenderMarked(0, 0, 'X'); got != want {
		t.Fatalf("RenderMarked() = %q, want %q", got, want)
	}
	want = "----\n|# |\n| X|\n----"
	if got := g.RenderMarked(1, 1, 'X'); got != want {
		t.Fatalf("RenderMarked() = %q, want %q", got, want)
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("001\n0#0\r\nx00\n\n\n")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if w, h := g.Dimensions(); w != 3 || h != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", w, h)
	}
	want := []bool{
		false, false, true,
		false, true, false,
		true, false, false,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
}

func TestParseGridRejectsJaggedRows(t *testing.T) {
	_, err := ParseGrid("000\n00\n000\n")
	if !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("err = %v, want ErrMalformedGrid", err)
	}
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("malformed grid should also be an invalid file: %v", err)
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error should name the offending row: %v", err)
	}
}

func TestParseGridRejectsEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n", "\n000"} {
		if _, err := ParseGrid(text); !errors.Is(err, ErrInvalidFile) {
			t.Fatalf("ParseGrid(%q) err = %v, want ErrInvalidFile", text, err)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"0\n",
		"1",
		"0110\n1001\n0110\n",
		"#0#0#\n00000\n",
	}
	for _, in := range inputs {
		g, err := ParseGrid(in)
		if err != nil {
			t.Fatalf("ParseGrid(%q): %v", in, err)
		}
		lines := strings.Split(g.Render(), "\n")
		rows := strings.Split(strings.TrimRight(in, "\n"), "\n")
		if len(lines) != len(rows)+2 {
			t.Fatalf("render of %q has %d lines, want %d", in, len(lines), len(rows)+2)
		}
		for y, row := range rows {
			var want strings.Builder
			want.WriteByte('|')
			for _, r := range row {
				if r == '0' {
					want.WriteByte(' ')
				} else {
					want.WriteByte('#')
				}
			}
			want.WriteByte('|')
			if lines[y+1] != want.String() {
				t.Fatalf("row %d of %q rendered %q, want %q", y, in, lines[y+1], want.String())
			}
		}
	}
}

func TestLoadGrid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beacon.txt")
	if err := os.WriteFile(path, []byte("1100\n1100\n0011\n0011\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if g.Population() != 8 {
		t.Fatalf("population = %d, want 8", g.Population())
	}

	if _, err := LoadGrid(filepath.Join(dir, "missing.txt")); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("missing file err = %v, want ErrInvalidFile", err)
	}
}

func TestGridUpdatesDoNotMutate(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	toggled := g.Toggle(1, 1)
	if g.At(1, 1) {
		t.Fatal("Toggle must not modify the receiver")
	}
	if !toggled.At(1, 1) {
		t.Fatal("Toggle should flip the cell in the result")
	}
	if back := toggled.Toggle(1, 1); !back.Equal(g) {
		t.Fatal("toggling twice should restore the grid")
	}
	cells := toggled.Cells()
	cells[0] = true
	if toggled.At(0, 0) {
		t.Fatal("Cells must return a copy")
	}
	if same := g.Set(10, 10, true); !same.Equal(g) {
		t.Fatal("out-of-bounds Set should leave cells unchanged")
	}
}

func TestMapReadsOnlyPreviousGrid(t *testing.T) {
	g, err := GridFromRows([][]bool{{true, false, false, false}})
	if err != nil {
		t.Fatal(err)
	}
	// Shift right: each cell copies its left neighbour. A sequential in-place
	// update would smear the live cell across the whole row.
	next := g.Map(func(x, y int, _ bool) bool { return g.At(x-1, y) })
	want := []bool{false, true, false, false}
	if !slices.Equal(next.Cells(), want) {
		t.Fatalf("cells = %v, want %v", next.Cells(), want)
	}
}

func TestAtAndWrap(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(-1, 0) || g.At(0, -1) || g.At(4, 0) || g.At(0, 3) {
		t.Fatal("out-of-bounds cells must read as dead")
	}
	cases := []struct{ x, y, wx, wy int }{
		{-1, 0, 3, 0},
		{4, 2, 0, 2},
		{2, -1, 2, 2},
		{2, 3, 2, 0},
		{-5, -4, 3, 2},
	}
	for _, c := range cases {
		if x, y := g.Wrap(c.x, c.y); x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestRandomGridSeeded(t *testing.T) {
	a, err := RandomGrid(16, 16, prng.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomGrid(16, 16, prng.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed should produce the same grid")
	}
	if _, err := RandomGrid(0, 4, prng.NewRNG(3)); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestGridFromRowsRejectsJagged(t *testing.T) {
	_, err := GridFromRows([][]bool{{true, false}, {true}})
	if !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("err = %v, want ErrMalformedGrid", err)
	}
	rows := [][]bool{{true, false}, {false, true}}
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	got := g.Rows()
	got[0][0] = false
	if !g.At(0, 0) {
		t.Fatal("Rows must return a copy")
	}
}

func TestGridIsolatedFromCallers(t *testing.T) {
	g, err := ParseGrid("010\n000")
	if err != nil {
		t.Fatal(err)
	}
	rows := g.Rows()
	rows[0][0] = true
	cells := g.Cells()
	cells[2] = true
	if g.Population() != 1 || g.At(0, 0) || g.At(2, 0) {
		t.Fatalf("copies leaked into the grid:\n%s", g.Render())
	}

	next := g.Toggle(2, 1)
	if w, h := next.Dimensions(); w != 3 || h != 2 || next.Size() != g.Size() {
		t.Fatalf("Toggle changed dimensions to %dx%d", w, h)
	}
	if g.At(2, 1) || !next.At(2, 1) {
		t.Fatal("Toggle must return a new grid and leave the receiver alone")
	}
}
