package ant

import (
	"testing"

	"termlife/internal/core"
)

func blank(t *testing.T, w, h int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFirstStepOnWhiteGrid(t *testing.T) {
	a := New(blank(t, 5, 5))
	if x, y := a.Position(); x != 2 || y != 2 || a.Heading() != Up {
		t.Fatalf("start = (%d,%d) %v, want (2,2) up", x, y, a.Heading())
	}

	next := a.Next()
	if !next.Grid().At(2, 2) {
		t.Fatal("starting cell should be black after one step")
	}
	if next.Heading() != Right {
		t.Fatalf("heading = %v, want right", next.Heading())
	}
	if x, y := next.Position(); x != 3 || y != 2 {
		t.Fatalf("position = (%d,%d), want (3,2)", x, y)
	}
	if a.Grid().At(2, 2) {
		t.Fatal("Next must not modify the previous state")
	}
}

func TestBlackCellTurnsLeft(t *testing.T) {
	a := New(blank(t, 5, 5).Set(2, 2, true))
	next := a.Next()
	if next.Heading() != Left {
		t.Fatalf("heading = %v, want left", next.Heading())
	}
	if next.Grid().At(2, 2) {
		t.Fatal("black cell should turn white")
	}
	if x, y := next.Position(); x != 1 || y != 2 {
		t.Fatalf("position = (%d,%d), want (1,2)", x, y)
	}
}

func TestWrapsAroundEdges(t *testing.T) {
	g := blank(t, 4, 3)
	cases := []struct {
		x, y    int
		heading Heading
		wx, wy  int
	}{
		// white cells turn right before moving
		{3, 1, Up, 0, 1},
		{1, 2, Right, 1, 0},
		{0, 1, Down, 3, 1},
		{1, 0, Left, 1, 2},
	}
	for _, c := range cases {
		a := &Ant{grid: g, x: c.x, y: c.y, heading: c.heading}
		next := a.Next()
		if x, y := next.Position(); x != c.wx || y != c.wy {
			t.Fatalf("from (%d,%d) %v moved to (%d,%d), want (%d,%d)", c.x, c.y, c.heading, x, y, c.wx, c.wy)
		}
	}
}

func TestSquareWalkReturnsAndTurnsLeft(t *testing.T) {
	a := New(blank(t, 5, 5)).FastForward(4)
	if x, y := a.Position(); x != 2 || y != 2 || a.Heading() != Up {
		t.Fatalf("after 4 steps = (%d,%d) %v, want (2,2) up", x, y, a.Heading())
	}
	if a.Grid().Population() != 4 {
		t.Fatalf("black cells = %d, want 4", a.Grid().Population())
	}

	a = a.Next()
	if x, y := a.Position(); x != 1 || y != 2 || a.Heading() != Left {
		t.Fatalf("after 5 steps = (%d,%d) %v, want (1,2) left", x, y, a.Heading())
	}
	for _, p := range [][2]int{{3, 2}, {3, 3}, {2, 3}} {
		if !a.Grid().At(p[0], p[1]) {
			t.Fatalf("cell (%d,%d) should be black", p[0], p[1])
		}
	}
	if a.Grid().At(2, 2) || a.Generation() != 5 {
		t.Fatalf("unexpected state after 5 steps:\n%s", a.Render())
	}
}

func TestRenderMarksAnt(t *testing.T) {
	a := New(blank(t, 3, 3))
	want := "-----\n|   |\n| X |\n|   |\n-----"
	if got := a.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	// The marker wins over a black cell.
	b := New(blank(t, 3, 3).Set(1, 1, true).Set(0, 0, true))
	want = "-----\n|#  |\n| X |\n|   |\n-----"
	if got := b.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestFastForwardMatchesSteps(t *testing.T) {
	start := New(blank(t, 11, 11))
	stepped := core.Advance(start, 120).(*Ant)
	ff := start.FastForward(120)
	if !stepped.Grid().Equal(ff.Grid()) || stepped.Heading() != ff.Heading() {
		t.Fatal("FastForward should match repeated Step")
	}
	x, y := ff.Position()
	sx, sy := stepped.Position()
	if x != sx || y != sy {
		t.Fatalf("positions differ: (%d,%d) vs (%d,%d)", x, y, sx, sy)
	}
	if start.FastForward(0) != start {
		t.Fatal("FastForward(0) should return the same state")
	}
}

func TestHeadingCycle(t *testing.T) {
	h := Up
	for _, want := range []Heading{Right, Down, Left, Up} {
		h = h.TurnRight()
		if h != want {
			t.Fatalf("TurnRight = %v, want %v", h, want)
		}
	}
	for _, want := range []Heading{Left, Down, Right, Up} {
		h = h.TurnLeft()
		if h != want {
			t.Fatalf("TurnLeft = %v, want %v", h, want)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	f, err := core.Lookup("ant")
	if err != nil {
		t.Fatal(err)
	}
	a, err := f(map[string]string{"w": "9", "h": "7", "steps": "3"})
	if err != nil {
		t.Fatal(err)
	}
	ant := a.(*Ant)
	if ant.Generation() != 3 || ant.Size() != (core.Size{W: 9, H: 7}) {
		t.Fatalf("unexpected ant gen=%d size=%+v", ant.Generation(), ant.Size())
	}
	if ant.Grid().Population() != 3 {
		t.Fatalf("black cells = %d, want 3", ant.Grid().Population())
	}
	if x, y, ok := ant.Marker(); !ok || x != 4 || y != 4 {
		t.Fatalf("marker = (%d,%d,%v), want (4,4,true)", x, y, ok)
	}
}
