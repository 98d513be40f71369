package elementary

import "testing"

func TestRule90Sierpinski(t *testing.T) {
	e, err := New(7, 3, 90)
	if err != nil {
		t.Fatal(err)
	}
	next := e.Step().Step().(*Elementary)
	want := "---------\n" +
		"| #   # |\n" +
		"|  # #  |\n" +
		"|   #   |\n" +
		"---------"
	if got := next.Render(); got != want {
		t.Fatalf("Render() =\n%s\nwant\n%s", got, want)
	}
	if next.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", next.Generation())
	}
	if e.Grid().Population() != 1 {
		t.Fatal("Step must not modify the previous state")
	}
}

func TestTopRowWraps(t *testing.T) {
	// Rule 2 copies the right neighbour into a cell whose left and own bits
	// are clear, so the seed moves one column left per step and wraps.
	e, err := New(3, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	a := e.Step().Step()
	if !a.(*Elementary).Grid().At(2, 0) {
		t.Fatalf("expected the seed to wrap to the right edge:\n%s", a.Render())
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-1", "rule": "300"})
	if c.Width != 10 || c.Height != DefaultConfig().Height || c.Rule != 110 {
		t.Fatalf("unexpected config %+v", c)
	}
	if e, err := New(0, 1, 30); err == nil || e != nil {
		t.Fatal("expected an error for zero width")
	}
}
